// Package board holds the note board's session state: the ordered note list
// with single-slot undo, and the drag session that deletes a note when it is
// dropped on the trash target.
//
// Everything here runs on the UI goroutine. There is no locking.
package board

import "strings"

const (
	// UndoMessage is shown to the user whenever a deletion can be undone.
	UndoMessage = "Note deleted."
	// UndoActionLabel labels the prompt's undo action.
	UndoActionLabel = "Undo"
)

// Note is a single note. ID is assigned once and never reused.
type Note struct {
	ID   int
	Text string
}

// PendingUndo is the most recent deletion. Seq identifies the deletion so
// that a prompt raised for an older deletion can tell it has been superseded.
type PendingUndo struct {
	Note  Note
	Index int
	Seq   uint64
}

// List is an ordered note list, newest first.
type List struct {
	notes   []Note
	nextID  int
	seq     uint64
	pending *PendingUndo

	subs   []subscriber
	subSeq int
}

type subscriber struct {
	id int
	fn func(Event)
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add prepends a note with the next ID. Blank text is ignored.
func (l *List) Add(text string) (Note, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, false
	}
	l.nextID++
	n := Note{ID: l.nextID, Text: text}
	l.notes = append([]Note{n}, l.notes...)
	l.emit(Event{Kind: EventAdded, Note: n, Index: 0})
	return n, true
}

// DeleteByID removes the note with the given ID and records it for undo.
// Unknown IDs are ignored and leave the pending undo untouched.
func (l *List) DeleteByID(id int) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	n := l.notes[idx]
	l.notes = append(l.notes[:idx], l.notes[idx+1:]...)
	l.seq++
	l.pending = &PendingUndo{Note: n, Index: idx, Seq: l.seq}
	l.emit(Event{
		Kind:    EventDeleted,
		Note:    n,
		Index:   idx,
		Seq:     l.seq,
		Message: UndoMessage,
	})
	return true
}

// Undo reinserts the last deleted note at its old index, clamped to the
// current length.
func (l *List) Undo() bool {
	if l.pending == nil {
		return false
	}
	p := *l.pending
	l.pending = nil

	idx := min(p.Index, len(l.notes))
	l.notes = append(l.notes, Note{})
	copy(l.notes[idx+1:], l.notes[idx:])
	l.notes[idx] = p.Note
	l.emit(Event{Kind: EventRestored, Note: p.Note, Index: idx, Seq: p.Seq})
	return true
}

// UndoIf undoes only when the pending deletion is still the one identified
// by seq.
func (l *List) UndoIf(seq uint64) bool {
	if l.pending == nil || l.pending.Seq != seq {
		return false
	}
	return l.Undo()
}

// Pending returns the pending undo, if any.
func (l *List) Pending() (PendingUndo, bool) {
	if l.pending == nil {
		return PendingUndo{}, false
	}
	return *l.pending, true
}

// IndexOf returns the position of the note with the given ID, or -1.
func (l *List) IndexOf(id int) int {
	for i, n := range l.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the note with the given ID.
func (l *List) Get(id int) (Note, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.notes[i], true
	}
	return Note{}, false
}

// Notes returns a copy of the notes in display order.
func (l *List) Notes() []Note {
	out := make([]Note, len(l.notes))
	copy(out, l.notes)
	return out
}

// Len returns the number of notes.
func (l *List) Len() int { return len(l.notes) }

// Subscribe registers fn for every subsequent event. The returned func
// removes the subscription.
func (l *List) Subscribe(fn func(Event)) func() {
	l.subSeq++
	id := l.subSeq
	l.subs = append(l.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *List) emit(e Event) {
	for _, s := range l.subs {
		s.fn(e)
	}
}
