// Package panel implements the dropdown panel of a multi-select control:
// a search box, an optional "select all" row and the filtered option list.
//
// The panel holds no authoritative selection. The owner passes the current
// value in through Props and receives every change as a complete new
// selection through OnChange.
package panel

import (
	"multiselect/internal/domain"
	"multiselect/internal/filter"
	"multiselect/internal/i18n"
	"multiselect/internal/ui/views"
)

// Focus sentinels. Option rows follow select-all starting at 1.
const (
	FocusSearch = -1
	FocusNone   = 0
)

// DefaultMobileBreakpoint is the terminal width below which the close
// affordance is shown
const DefaultMobileBreakpoint = 48

// Props is the panel's input contract
type Props struct {
	Options []domain.Option
	Value   []domain.Option

	OnChange      func(selected []domain.Option)
	OnMobileClose func()

	Disabled          bool
	DisableSearch     bool
	FocusSearchOnOpen bool
	HasSelectAll      bool
	SelectAllLabel    string
	OverrideStrings   map[string]string
	FilterOptions     filter.Func
	ItemRenderer      views.ItemRenderer

	// MobileBreakpoint is in columns; zero means DefaultMobileBreakpoint
	MobileBreakpoint int
}

// Panel owns the transient UI state: search text and focus
type Panel struct {
	props      Props
	searchText string
	focusIndex int
}

// New mounts a panel
func New(props Props) *Panel {
	p := &Panel{
		props:      props,
		focusIndex: FocusNone,
	}
	if props.FocusSearchOnOpen {
		p.focusIndex = FocusSearch
	}
	return p
}

// SetProps replaces the props, typically after the owner applied a change.
// A row focus left beyond a shrunken option list is pulled back in, and
// turning search off drops any pending search text.
func (p *Panel) SetProps(props Props) {
	p.props = props
	if props.DisableSearch {
		p.searchText = ""
	}
	if p.focusIndex > FocusNone {
		if n := len(p.FilteredOptions()); p.focusIndex > n {
			p.focusIndex = n
		}
	}
}

// SearchText returns the current search text
func (p *Panel) SearchText() string {
	return p.searchText
}

// FocusIndex returns the focused row, or FocusSearch
func (p *Panel) FocusIndex() int {
	return p.focusIndex
}

// SelectAllValues returns the selection "select all" would produce.
// Checked yields every enabled option plus disabled ones that are already
// selected; unchecked yields only the disabled options already selected.
// Disabled options therefore never enter or leave the selection.
func (p *Panel) SelectAllValues(checked bool) []domain.Option {
	selected := make(map[string]bool, len(p.props.Value))
	for _, v := range domain.Values(p.props.Value) {
		selected[v] = true
	}

	out := make([]domain.Option, 0, len(p.props.Options))
	for _, o := range p.props.Options {
		if checked {
			if !o.Disabled || selected[o.Value] {
				out = append(out, o)
			}
			continue
		}
		if o.Disabled && selected[o.Value] {
			out = append(out, o)
		}
	}
	return out
}

// SelectAllLength is the number of options "select all" covers.
// It is derived from the current props on every call.
func (p *Panel) SelectAllLength() int {
	return len(p.SelectAllValues(true))
}

// SelectAllChecked reports whether the select-all row renders checked.
// An empty option set with an empty selection counts as checked.
func (p *Panel) SelectAllChecked() bool {
	return p.SelectAllLength() == len(p.props.Value)
}

// SelectAllChanged reports the full selection for the new select-all state
func (p *Panel) SelectAllChanged(checked bool) {
	if p.props.OnChange == nil {
		return
	}
	p.props.OnChange(p.SelectAllValues(checked))
}

// HandleSearchChange stores the new search text and focuses the search box.
// It is a no-op while search is disabled.
func (p *Panel) HandleSearchChange(text string) {
	if p.props.DisableSearch {
		return
	}
	p.searchText = text
	p.focusIndex = FocusSearch
}

// HandleSearchFocus moves focus to the search box
func (p *Panel) HandleSearchFocus() {
	p.focusIndex = FocusSearch
}

// HandleItemClicked focuses the row at display index
func (p *Panel) HandleItemClicked(index int) {
	p.focusIndex = index
}

// HandleKeyDown moves focus on arrow keys. Alt+arrow is left to the host,
// and so is every other key.
func (p *Panel) HandleKeyDown(e *Event) {
	switch e.Which {
	case KeyArrowUp:
		if e.Alt {
			return
		}
		p.updateFocus(-1)
	case KeyArrowDown:
		if e.Alt {
			return
		}
		p.updateFocus(1)
	default:
		return
	}
	e.StopPropagation()
	e.PreventDefault()
}

// HandleMobileClose dismisses the panel through the owner
func (p *Panel) HandleMobileClose(e *Event) {
	if p.props.OnMobileClose != nil {
		p.props.OnMobileClose()
	}
	if e != nil {
		e.PreventDefault()
	}
}

// FilteredOptions applies the caller's filter, or the built-in fuzzy one
func (p *Panel) FilteredOptions() []domain.Option {
	query := p.query()
	if p.props.FilterOptions != nil {
		return p.props.FilterOptions(p.props.Options, query)
	}
	return filter.Options(p.props.Options, query)
}

// SelectAllVisible reports whether the select-all row is part of the panel
func (p *Panel) SelectAllVisible() bool {
	return p.props.HasSelectAll && p.query() == ""
}

// MobileCloseVisible reports whether the close affordance is shown at width
func (p *Panel) MobileCloseVisible(width int) bool {
	return width > 0 && width < p.mobileBreakpoint()
}

// ActivateFocused toggles whatever row has focus
func (p *Panel) ActivateFocused() {
	switch {
	case p.focusIndex == FocusNone:
		if p.SelectAllVisible() && !p.props.Disabled {
			p.SelectAllChanged(!p.SelectAllChecked())
		}
	case p.focusIndex > FocusNone:
		p.list().Toggle(p.focusIndex - 1)
	}
}

// ClickRow handles a click on the row at display index: it focuses the
// row and toggles it.
func (p *Panel) ClickRow(index int) {
	if index == FocusNone {
		if !p.SelectAllVisible() {
			return
		}
		p.HandleItemClicked(FocusNone)
		if !p.props.Disabled {
			p.SelectAllChanged(!p.SelectAllChecked())
		}
		return
	}
	p.list().Click(index - 1)
}

// Render builds the view tree for a terminal of the given width
func (p *Panel) Render(width int) views.Tree {
	tree := views.Tree{
		Role: "listbox",
		MobileClose: views.CloseButton{
			Label:   i18n.Resolve(i18n.Close, p.props.OverrideStrings),
			Visible: p.MobileCloseVisible(width),
		},
		ItemRenderer: p.props.ItemRenderer,
	}

	if !p.props.DisableSearch {
		tree.Search = &views.SearchBox{
			Placeholder: i18n.Resolve(i18n.Search, p.props.OverrideStrings),
			Value:       p.searchText,
			Focused:     p.focusIndex == FocusSearch,
			AutoFocus:   p.props.FocusSearchOnOpen,
		}
	}

	if p.SelectAllVisible() {
		tree.SelectAll = &views.Row{
			Option:   p.selectAllOption(),
			Index:    FocusNone,
			Checked:  p.SelectAllChecked(),
			Focused:  p.focusIndex == FocusNone,
			Disabled: p.props.Disabled,
		}
	}

	tree.Rows = p.list().Rows()
	if len(tree.Rows) == 0 {
		tree.Empty = i18n.Resolve(i18n.NoOptions, p.props.OverrideStrings)
	}
	return tree
}

func (p *Panel) selectAllOption() domain.Option {
	label := p.props.SelectAllLabel
	if label == "" {
		label = i18n.Resolve(i18n.SelectAll, p.props.OverrideStrings)
	}
	return domain.Option{Label: label, Value: ""}
}

func (p *Panel) list() *views.List {
	return &views.List{
		Options:      p.FilteredOptions(),
		Value:        p.props.Value,
		FocusIndex:   p.focusIndex - 1,
		Disabled:     p.props.Disabled,
		ItemRenderer: p.props.ItemRenderer,
		OnChange:     p.props.OnChange,
		OnClick:      func(index int) { p.HandleItemClicked(index + 1) },
	}
}

// query is the search text in effect; none while search is disabled
func (p *Panel) query() string {
	if p.props.DisableSearch {
		return ""
	}
	return p.searchText
}

func (p *Panel) updateFocus(offset int) {
	newFocus := p.focusIndex + offset
	if newFocus < 0 {
		newFocus = 0
	}
	if n := len(p.FilteredOptions()); newFocus > n {
		newFocus = n
	}
	p.focusIndex = newFocus
}

func (p *Panel) mobileBreakpoint() int {
	if p.props.MobileBreakpoint > 0 {
		return p.props.MobileBreakpoint
	}
	return DefaultMobileBreakpoint
}
