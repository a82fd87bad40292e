package views

// CloseButton is the dismiss affordance shown on narrow terminals
type CloseButton struct {
	Label   string
	Visible bool
}

// SearchBox describes the search input
type SearchBox struct {
	Placeholder string
	Value       string
	Focused     bool
	AutoFocus   bool
	// Input is the host's rendered input widget; when empty the box is
	// drawn from Value and Placeholder.
	Input string
}

// Tree is the structured output of one panel render
type Tree struct {
	Role         string
	MobileClose  CloseButton
	Search       *SearchBox
	SelectAll    *Row
	Rows         []Row
	Empty        string
	ItemRenderer ItemRenderer
}

// DisplayRows returns select-all (when present) followed by the option rows
func (t Tree) DisplayRows() []Row {
	if t.SelectAll == nil {
		return t.Rows
	}
	rows := make([]Row, 0, len(t.Rows)+1)
	rows = append(rows, *t.SelectAll)
	return append(rows, t.Rows...)
}

// TargetKind identifies what a rendered line belongs to
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetClose
	TargetSearch
	TargetRow
)

// Target is a hit-test result. Index is the row's display index for
// TargetRow (0 for select-all).
type Target struct {
	Kind  TargetKind
	Index int
}

// Layout maps panel lines to hit targets
type Layout struct {
	lines []Target
}

// At returns the target on line y, counted from the panel's top edge
func (l Layout) At(y int) Target {
	if y < 0 || y >= len(l.lines) {
		return Target{}
	}
	return l.lines[y]
}

// Height returns the number of lines the panel occupies
func (l Layout) Height() int {
	return len(l.lines)
}
