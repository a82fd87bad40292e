package views

import (
	"multiselect/internal/domain"
)

// List turns a filtered option list into rows and routes row events back
// to its owner. FocusIndex is 0-based into Options; anything outside the
// list means no row is focused.
type List struct {
	Options      []domain.Option
	Value        []domain.Option
	FocusIndex   int
	Disabled     bool
	ItemRenderer ItemRenderer

	OnChange func(selected []domain.Option)
	OnClick  func(index int)
}

// Rows builds the row data for every option
func (l *List) Rows() []Row {
	rows := make([]Row, 0, len(l.Options))
	for i, o := range l.Options {
		rows = append(rows, Row{
			Option:   o,
			Index:    i + 1,
			Checked:  domain.ContainsValue(l.Value, o.Value),
			Focused:  i == l.FocusIndex,
			Disabled: l.Disabled || o.Disabled,
		})
	}
	return rows
}

// Toggle flips the option at index and reports the complete new selection
func (l *List) Toggle(index int) {
	if index < 0 || index >= len(l.Options) {
		return
	}
	o := l.Options[index]
	if l.Disabled || o.Disabled {
		return
	}
	l.selectionChanged(o, !domain.ContainsValue(l.Value, o.Value))
}

// Click reports the click and toggles the clicked row
func (l *List) Click(index int) {
	if index < 0 || index >= len(l.Options) {
		return
	}
	if l.OnClick != nil {
		l.OnClick(index)
	}
	l.Toggle(index)
}

func (l *List) selectionChanged(o domain.Option, checked bool) {
	if l.OnChange == nil {
		return
	}
	if checked {
		l.OnChange(domain.With(l.Value, o))
		return
	}
	l.OnChange(domain.Without(l.Value, o.Value))
}
