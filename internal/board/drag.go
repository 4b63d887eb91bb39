package board

import "strings"

// Rect is an inclusive, axis-aligned rectangle in screen cells.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectFromCells converts an origin and size into an inclusive Rect.
// A zero width or height yields an empty rect.
func RectFromCells(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w - 1, Bottom: y + h - 1}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Right < r.Left || r.Bottom < r.Top
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}

// DragState is the drag session's state.
type DragState int

const (
	DragIdle DragState = iota
	// DragPressed means a row is held down and the long-press delay has
	// not elapsed yet.
	DragPressed
	DragDragging
)

// String returns the state name.
func (s DragState) String() string {
	switch s {
	case DragPressed:
		return "pressed"
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// pressSlop is how far (in cells) the pointer may wander while a long-press
// is pending before the press is abandoned.
const pressSlop = 1

// Drag is a snapshot of the drag session.
type Drag struct {
	State      DragState
	NoteID     int
	X, Y       int
	OverTarget bool
}

// Active reports whether a note is being dragged.
func (d Drag) Active() bool { return d.State == DragDragging }

// Board is the note board session: the list, the text being typed and the
// drag session against the trash target.
type Board struct {
	List  *List
	Input string

	drag      Drag
	pressX    int
	pressY    int
	pressSeq  uint64
	target    Rect
	hasTarget bool
}

// New creates an empty board.
func New() *Board {
	return &Board{List: NewList()}
}

// CanSubmit reports whether the current input would add a note.
func (b *Board) CanSubmit() bool {
	return strings.TrimSpace(b.Input) != ""
}

// Submit adds the current input as a note and clears the input on success.
func (b *Board) Submit() (Note, bool) {
	n, ok := b.List.Add(b.Input)
	if ok {
		b.Input = ""
	}
	return n, ok
}

// SetTarget updates the trash region. A drag in progress is tested
// against the new region on its next pointer sample.
func (b *Board) SetTarget(r Rect) {
	b.target = r
	b.hasTarget = !r.Empty()
}

// ClearTarget removes the trash region; nothing is over target until it is
// set again.
func (b *Board) ClearTarget() {
	b.target = Rect{}
	b.hasTarget = false
}

// Target returns the trash region, if one is laid out.
func (b *Board) Target() (Rect, bool) { return b.target, b.hasTarget }

// Drag returns the current drag session.
func (b *Board) Drag() Drag { return b.drag }

// Selected reports whether the note is the one being dragged.
func (b *Board) Selected(id int) bool {
	return b.drag.State == DragDragging && b.drag.NoteID == id
}

// Press starts a pending long-press on a note. It returns the press
// sequence that LongPress must be called with.
func (b *Board) Press(id, x, y int) (uint64, bool) {
	if b.drag.State != DragIdle {
		return 0, false
	}
	if _, ok := b.List.Get(id); !ok {
		return 0, false
	}
	b.pressSeq++
	b.pressX, b.pressY = x, y
	b.drag = Drag{State: DragPressed, NoteID: id, X: x, Y: y}
	return b.pressSeq, true
}

// LongPress promotes a pending press to a drag once the hold delay has
// elapsed. Stale sequences are ignored.
func (b *Board) LongPress(seq uint64) bool {
	if b.drag.State != DragPressed || seq != b.pressSeq {
		return false
	}
	if _, ok := b.List.Get(b.drag.NoteID); !ok {
		b.drag = Drag{}
		return false
	}
	b.startDrag(b.drag.NoteID, b.drag.X, b.drag.Y)
	return true
}

// BeginDrag starts dragging a note immediately, skipping the long-press.
func (b *Board) BeginDrag(id, x, y int) bool {
	if b.drag.State != DragIdle {
		return false
	}
	if _, ok := b.List.Get(id); !ok {
		return false
	}
	b.startDrag(id, x, y)
	return true
}

func (b *Board) startDrag(id, x, y int) {
	b.drag = Drag{State: DragDragging, NoteID: id, X: x, Y: y, OverTarget: b.hit(x, y)}
	n, _ := b.List.Get(id)
	b.List.emit(Event{Kind: EventDragStarted, Note: n, X: x, Y: y, OverTarget: b.drag.OverTarget})
}

// Move records a pointer sample. While dragging it re-runs the hit test;
// while a press is pending, wandering past the slop abandons the press.
func (b *Board) Move(x, y int) {
	switch b.drag.State {
	case DragPressed:
		if abs(x-b.pressX) > pressSlop || abs(y-b.pressY) > pressSlop {
			b.drag = Drag{}
			return
		}
		b.drag.X, b.drag.Y = x, y
	case DragDragging:
		b.drag.X, b.drag.Y = x, y
		b.drag.OverTarget = b.hit(x, y)
		n, _ := b.List.Get(b.drag.NoteID)
		b.List.emit(Event{Kind: EventDragMoved, Note: n, X: x, Y: y, OverTarget: b.drag.OverTarget})
	}
}

// Release ends the gesture. A drag released over the target deletes the
// dragged note, looked up by ID. It reports whether a note was deleted.
func (b *Board) Release() bool {
	d := b.drag
	b.drag = Drag{}
	if d.State != DragDragging {
		return false
	}
	deleted := false
	if d.OverTarget {
		deleted = b.List.DeleteByID(d.NoteID)
	}
	b.List.emit(Event{Kind: EventDragEnded, Note: Note{ID: d.NoteID}, X: d.X, Y: d.Y, OverTarget: d.OverTarget})
	return deleted
}

// Cancel abandons the gesture without touching the list.
func (b *Board) Cancel() {
	d := b.drag
	b.drag = Drag{}
	if d.State == DragDragging {
		b.List.emit(Event{Kind: EventDragEnded, Note: Note{ID: d.NoteID}, X: d.X, Y: d.Y})
	}
}

func (b *Board) hit(x, y int) bool {
	return b.hasTarget && b.target.Contains(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
