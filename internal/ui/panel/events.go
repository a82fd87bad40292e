package panel

// KeyCode identifies a key the way DOM key codes do
type KeyCode int

const (
	KeyNone      KeyCode = 0
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyArrowUp   KeyCode = 38
	KeyArrowDown KeyCode = 40
)

// Event is a key press or click routed into the panel.
// Handlers mark it instead of returning flags so the host can decide what
// to do with events the panel left alone.
type Event struct {
	Which KeyCode
	Alt   bool

	propagationStopped bool
	defaultPrevented   bool
}

// NewKeyEvent creates an event for a key press
func NewKeyEvent(which KeyCode, alt bool) *Event {
	return &Event{Which: which, Alt: alt}
}

// StopPropagation keeps the event from reaching outer handlers
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// PreventDefault suppresses the host's default action for the event
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// PropagationStopped reports whether a handler consumed the event
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// DefaultPrevented reports whether the default action was suppressed
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
