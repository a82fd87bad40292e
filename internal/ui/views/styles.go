package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the panel
type Styles struct {
	Title           lipgloss.Style
	Panel           lipgloss.Style
	Close           lipgloss.Style
	Search          lipgloss.Style
	Placeholder     lipgloss.Style
	Row             lipgloss.Style
	RowFocused      lipgloss.Style
	RowDisabled     lipgloss.Style
	Checkbox        lipgloss.Style
	CheckboxChecked lipgloss.Style
	SelectAll       lipgloss.Style
	Empty           lipgloss.Style
	Status          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Close: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Search: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("241")),
		Placeholder:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Row:             lipgloss.NewStyle(),
		RowFocused:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		RowDisabled:     lipgloss.NewStyle().Faint(true),
		Checkbox:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CheckboxChecked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		SelectAll:       lipgloss.NewStyle().Bold(true),
		Empty:           lipgloss.NewStyle().Faint(true).Italic(true),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
