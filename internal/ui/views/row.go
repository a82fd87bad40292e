package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"multiselect/internal/domain"
)

// Row is the data behind one selectable line of the panel
type Row struct {
	Option   domain.Option
	Index    int // display index: 0 is select-all, options start at 1
	Checked  bool
	Focused  bool
	Disabled bool
}

// ItemRenderer lets callers draw the content of a row themselves.
// Focus highlighting is still applied around whatever it returns.
type ItemRenderer func(row Row) string

// RowRenderer handles rendering of a single row
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{
		styles: styles,
	}
}

// RenderRow renders a row, padded to width when width > 0
func (r *RowRenderer) RenderRow(row Row, custom ItemRenderer, width int) string {
	var line string
	if custom != nil {
		line = custom(row)
	} else {
		line = r.defaultContent(row, width)
	}

	style := r.styles.Row
	if row.Disabled {
		style = r.styles.RowDisabled
	}
	if row.Focused {
		style = style.Inherit(r.styles.RowFocused)
		// Pad the line so the highlight spans the panel
		if w := lipgloss.Width(line); width > 0 && w < width {
			line += strings.Repeat(" ", width-w)
		}
	}
	return style.Render(line)
}

func (r *RowRenderer) defaultContent(row Row, width int) string {
	box := r.styles.Checkbox.Render("[ ]")
	if row.Checked {
		box = r.styles.CheckboxChecked.Render("[x]")
	}

	label := row.Option.Label
	if width > 4 {
		label = runewidth.Truncate(label, width-4, "…")
	}
	if row.Index == 0 {
		label = r.styles.SelectAll.Render(label)
	}
	return box + " " + label
}
