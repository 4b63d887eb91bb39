package board

import "testing"

func texts(l *List) []string {
	var out []string
	for _, n := range l.Notes() {
		out = append(out, n.Text)
	}
	return out
}

func TestAdd_NewestFirstUniqueIDs(t *testing.T) {
	l := NewList()
	for _, s := range []string{"one", "two", "three", "four"} {
		if _, ok := l.Add(s); !ok {
			t.Fatalf("Add(%q) rejected", s)
		}
	}

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	if got := l.Notes()[0].Text; got != "four" {
		t.Errorf("newest note = %q, want four", got)
	}

	seen := make(map[int]bool)
	for _, n := range l.Notes() {
		if seen[n.ID] {
			t.Errorf("duplicate id %d", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestAdd_BlankIgnored(t *testing.T) {
	l := NewList()
	l.Add("keep")

	for _, s := range []string{"", " ", "\t\n", "   "} {
		if _, ok := l.Add(s); ok {
			t.Errorf("Add(%q) should be rejected", s)
		}
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestAdd_TrimsText(t *testing.T) {
	l := NewList()
	n, _ := l.Add("  buy milk  ")
	if n.Text != "buy milk" {
		t.Errorf("Text = %q, want %q", n.Text, "buy milk")
	}
}

func TestDeleteByID_Unknown(t *testing.T) {
	l := NewList()
	a, _ := l.Add("a")
	l.Add("b")
	l.DeleteByID(a.ID)
	before, _ := l.Pending()

	if l.DeleteByID(999) {
		t.Fatal("DeleteByID(999) should report false")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	after, ok := l.Pending()
	if !ok || after != before {
		t.Errorf("pending changed: before %+v, after %+v", before, after)
	}
}

func TestDeleteThenUndo_RestoresPosition(t *testing.T) {
	l := NewList()
	l.Add("c")
	b, _ := l.Add("b")
	l.Add("a")
	// [a, b, c]

	if !l.DeleteByID(b.ID) {
		t.Fatal("delete failed")
	}
	if got := texts(l); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("after delete = %v", got)
	}
	p, ok := l.Pending()
	if !ok || p.Index != 1 || p.Note != b {
		t.Fatalf("pending = %+v, %v", p, ok)
	}

	if !l.Undo() {
		t.Fatal("undo failed")
	}
	got := l.Notes()
	if len(got) != 3 || got[1] != b {
		t.Errorf("after undo = %v", texts(l))
	}
	if _, ok := l.Pending(); ok {
		t.Error("pending should be cleared after undo")
	}
}

func TestUndo_ClampsIndex(t *testing.T) {
	l := NewList()
	c, _ := l.Add("c")
	l.Add("b")
	l.Add("a")
	// [a, b, c]; delete c (index 2), then b disappears without touching
	// the pending slot.
	l.DeleteByID(c.ID)
	p, _ := l.Pending()
	l.notes = l.notes[:1] // only [a] remains
	l.pending = &p

	if !l.Undo() {
		t.Fatal("undo failed")
	}
	got := l.Notes()
	if len(got) != 2 || got[1] != c {
		t.Errorf("after undo = %v, want c appended", texts(l))
	}
}

func TestUndo_Empty(t *testing.T) {
	l := NewList()
	l.Add("a")
	if l.Undo() {
		t.Error("undo with empty slot should be a no-op")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestUndo_SingleSlot(t *testing.T) {
	l := NewList()
	x, _ := l.Add("x")
	y, _ := l.Add("y")
	l.Add("z")

	l.DeleteByID(x.ID)
	l.DeleteByID(y.ID)

	if !l.Undo() {
		t.Fatal("undo failed")
	}
	if _, ok := l.Get(y.ID); !ok {
		t.Error("second deleted note should be restored")
	}
	if _, ok := l.Get(x.ID); ok {
		t.Error("first deleted note must stay deleted")
	}
	if l.Undo() {
		t.Error("second undo should be a no-op")
	}
}

func TestUndoIf_StaleSeq(t *testing.T) {
	l := NewList()
	x, _ := l.Add("x")
	y, _ := l.Add("y")

	l.DeleteByID(x.ID)
	first, _ := l.Pending()
	l.DeleteByID(y.ID)

	if l.UndoIf(first.Seq) {
		t.Fatal("superseded prompt must not undo")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}

	second, _ := l.Pending()
	if !l.UndoIf(second.Seq) {
		t.Fatal("current prompt should undo")
	}
	if got := l.Notes(); len(got) != 1 || got[0] != y {
		t.Errorf("after undo = %v", texts(l))
	}
}

func TestScenario_AddDeleteUndo(t *testing.T) {
	l := NewList()
	a, _ := l.Add("A")
	b, _ := l.Add("B")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d", a.ID, b.ID)
	}
	if got := l.Notes(); got[0] != b || got[1] != a {
		t.Fatalf("after add = %v", texts(l))
	}

	l.DeleteByID(1)
	p, _ := l.Pending()
	if p.Note != a || p.Index != 1 {
		t.Fatalf("pending = %+v", p)
	}
	if got := l.Notes(); len(got) != 1 || got[0] != b {
		t.Fatalf("after delete = %v", texts(l))
	}

	l.Undo()
	if got := l.Notes(); len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("after undo = %v", texts(l))
	}
}

func TestIDsNeverReused(t *testing.T) {
	l := NewList()
	a, _ := l.Add("a")
	l.DeleteByID(a.ID)
	b, _ := l.Add("b")
	if b.ID == a.ID {
		t.Errorf("id %d reused", b.ID)
	}
}

func TestSubscribe(t *testing.T) {
	l := NewList()
	var kinds []EventKind
	var msg string
	unsub := l.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
		if e.Kind == EventDeleted {
			msg = e.Message
		}
	})

	a, _ := l.Add("a")
	l.DeleteByID(a.ID)
	l.DeleteByID(a.ID) // no event
	l.Undo()

	want := []EventKind{EventAdded, EventDeleted, EventRestored}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if msg != UndoMessage {
		t.Errorf("message = %q, want %q", msg, UndoMessage)
	}

	unsub()
	l.Add("b")
	if len(kinds) != 3 {
		t.Error("unsubscribed callback still invoked")
	}
}
