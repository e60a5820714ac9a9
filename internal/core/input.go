package core

// Key names a physical key independent of the input backend.
// Backends translate their native codes into these lowercase names
// ("up", "down", "left", "right", "w", "esc", ...).
type Key string

// Common key names.
const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyEscape Key = "esc"
	KeyEnter  Key = "enter"
	KeySpace  Key = " "
)

// EventKind distinguishes the two input events the simulation understands.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a discrete input event polled once per frame.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown only
}

// Press creates a key-down event.
func Press(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Quit creates an explicit quit event (window closed, Ctrl+C, ...).
func Quit() Event {
	return Event{Kind: EventQuit}
}
