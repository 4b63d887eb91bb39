package board

// EventKind identifies what changed.
type EventKind int

const (
	EventAdded EventKind = iota
	EventDeleted
	EventRestored
	EventDragStarted
	EventDragMoved
	EventDragEnded
)

// String returns a short name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventDeleted:
		return "deleted"
	case EventRestored:
		return "restored"
	case EventDragStarted:
		return "drag-started"
	case EventDragMoved:
		return "drag-moved"
	case EventDragEnded:
		return "drag-ended"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each mutation.
type Event struct {
	Kind  EventKind
	Note  Note
	Index int

	// Seq is the deletion sequence for EventDeleted and EventRestored.
	Seq uint64
	// Message is the user-facing text for EventDeleted.
	Message string

	// Drag fields, set for drag events.
	X, Y       int
	OverTarget bool
}
