package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/panel"
)

// KeyMap holds the bindings shown in the footer and the help page
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Search key.Binding
	Done   key.Binding
	Close  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done (in search)"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Search, k.Close, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Search, k.Done},
		{k.Close, k.Help, k.Quit},
	}
}

// Translate converts a terminal key press into a panel event.
// Keys the panel has no code for come back as KeyNone.
func Translate(msg tea.KeyMsg) *panel.Event {
	var which panel.KeyCode
	switch msg.Type {
	case tea.KeyUp:
		which = panel.KeyArrowUp
	case tea.KeyDown:
		which = panel.KeyArrowDown
	case tea.KeyEnter:
		which = panel.KeyEnter
	case tea.KeySpace:
		which = panel.KeySpace
	case tea.KeyEsc:
		which = panel.KeyEscape
	default:
		which = panel.KeyNone
	}
	return panel.NewKeyEvent(which, msg.Alt)
}
