package views

// Viewport is the visible window over the panel's rows
type Viewport struct {
	Offset int
	Height int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	v := &Viewport{}
	v.SetHeight(height)
	return v
}

// SetHeight updates the number of visible rows
func (v *Viewport) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.Height = height
}

// EnsureVisible scrolls so that cursor is inside the window.
// A cursor outside [0, total) leaves the offset alone apart from clamping.
func (v *Viewport) EnsureVisible(cursor, total int) {
	if cursor >= 0 && cursor < total {
		if cursor < v.Offset {
			v.Offset = cursor
		} else if cursor >= v.Offset+v.Height {
			v.Offset = cursor - v.Height + 1
		}
	}
	v.clamp(total)
}

// Window returns the [start, end) range of rows to draw
func (v *Viewport) Window(total int) (int, int) {
	v.clamp(total)
	end := v.Offset + v.Height
	if end > total {
		end = total
	}
	return v.Offset, end
}

func (v *Viewport) clamp(total int) {
	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
