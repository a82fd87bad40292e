package views

import (
	"strings"
)

// Renderer handles all panel rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles),
	}
}

// RenderPanel draws tree inside the panel frame. When vp is non-nil only
// the rows inside its window are drawn.
func (r *Renderer) RenderPanel(tree Tree, width int, vp *Viewport) (string, Layout) {
	frame := r.styles.Panel
	contentWidth := 0
	if width > 0 {
		contentWidth = width - frame.GetHorizontalFrameSize()
		if contentWidth < 1 {
			contentWidth = 1
		}
		frame = frame.Width(width - frame.GetHorizontalBorderSize())
	}

	var lines []string
	var targets []Target
	add := func(s string, t Target) {
		for _, l := range strings.Split(s, "\n") {
			lines = append(lines, l)
			targets = append(targets, t)
		}
	}

	if tree.MobileClose.Visible {
		add(r.styles.Close.Render("✕ "+tree.MobileClose.Label), Target{Kind: TargetClose})
	}

	if tree.Search != nil {
		add(r.renderSearch(*tree.Search, contentWidth), Target{Kind: TargetSearch})
	}

	rows := tree.DisplayRows()
	start, end := 0, len(rows)
	if vp != nil {
		start, end = vp.Window(len(rows))
	}
	for _, row := range rows[start:end] {
		add(r.rowRender.RenderRow(row, tree.ItemRenderer, contentWidth), Target{Kind: TargetRow, Index: row.Index})
	}

	if len(tree.Rows) == 0 && tree.Empty != "" {
		add(r.styles.Empty.Render(tree.Empty), Target{})
	}

	// Account for the frame around the content
	top := frame.GetBorderTopSize() + frame.GetPaddingTop()
	bottom := frame.GetBorderBottomSize() + frame.GetPaddingBottom()
	layout := make([]Target, 0, top+len(targets)+bottom)
	layout = append(layout, make([]Target, top)...)
	layout = append(layout, targets...)
	layout = append(layout, make([]Target, bottom)...)

	return frame.Render(strings.Join(lines, "\n")), Layout{lines: layout}
}

func (r *Renderer) renderSearch(box SearchBox, width int) string {
	content := box.Input
	if content == "" {
		if box.Value != "" {
			content = box.Value
		} else {
			content = r.styles.Placeholder.Render(box.Placeholder)
		}
	}
	style := r.styles.Search
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

// RenderTitle renders the program title line
func (r *Renderer) RenderTitle(title string) string {
	return r.styles.Title.Render(title)
}

// RenderStatus renders a dim status line
func (r *Renderer) RenderStatus(status string) string {
	return r.styles.Status.Render(status)
}
