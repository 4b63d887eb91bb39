package quiz

import (
	"testing"

	"github.com/marcus/noteboard/internal/state"
)

func TestResolveName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Ada", "Ada"},
		{"  Ada  ", "Ada"},
		{"", "Player"},
		{"   ", "Player"},
	}
	for _, tt := range tests {
		if got := ResolveName(tt.in); got != tt.want {
			t.Errorf("ResolveName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnswer_CorrectAndIncorrect(t *testing.T) {
	s := NewSession(DefaultQuestions(), "Ada")

	r, ok := s.Answer(2) // Paris
	if !ok || !r.Correct || r.Message() != "Correct!" {
		t.Fatalf("Answer(2) = %+v, %v", r, ok)
	}
	if s.Score() != 1 || !s.ShowNext() {
		t.Errorf("score=%d showNext=%v", s.Score(), s.ShowNext())
	}

	s.Next()
	r, ok = s.Answer(0) // Venus
	if !ok || r.Correct || r.Message() != "Incorrect!" {
		t.Fatalf("Answer(0) = %+v, %v", r, ok)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestAnswer_OnlyOncePerQuestion(t *testing.T) {
	s := NewSession(DefaultQuestions(), "")
	if _, ok := s.Answer(2); !ok {
		t.Fatal("first answer should be accepted")
	}
	if _, ok := s.Answer(2); ok {
		t.Error("second answer should be rejected")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestAnswer_OutOfRange(t *testing.T) {
	s := NewSession(DefaultQuestions(), "")
	for _, i := range []int{-1, 4, 99} {
		if _, ok := s.Answer(i); ok {
			t.Errorf("Answer(%d) should be rejected", i)
		}
	}
	if s.ShowNext() {
		t.Error("rejected answers must not reveal Next")
	}
}

func TestNext_RequiresAnswer(t *testing.T) {
	s := NewSession(DefaultQuestions(), "")
	if s.Next() {
		t.Error("Next without an answer should not finish")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
}

func TestFullRun(t *testing.T) {
	qs := DefaultQuestions()
	s := NewSession(qs, "Ada")

	for i, q := range qs {
		if s.Index() != i {
			t.Fatalf("index = %d, want %d", s.Index(), i)
		}
		wantLabel := "Next Question"
		if i == len(qs)-1 {
			wantLabel = "Finish Quiz"
		}
		if s.NextLabel() != wantLabel {
			t.Errorf("question %d label = %q, want %q", i, s.NextLabel(), wantLabel)
		}
		answer := q.Correct
		if i == 1 {
			answer = (q.Correct + 1) % len(q.Options)
		}
		s.Answer(answer)
		finished := s.Next()
		if finished != (i == len(qs)-1) {
			t.Fatalf("question %d: finished = %v", i, finished)
		}
		if !finished && s.Selected() != NoAnswer {
			t.Errorf("selection should reset after Next")
		}
	}

	if got := s.CompletionMessage(); got != "Quiz completed! Final score: 4/5" {
		t.Errorf("CompletionMessage() = %q", got)
	}
}

func TestSaveRestore_RoundTrip(t *testing.T) {
	s := NewSession(DefaultQuestions(), "Ada")
	s.Answer(2)
	s.Next()
	s.Answer(1)

	got := Restore(DefaultQuestions(), s.Save())
	if got.Index() != 1 || got.Score() != 2 || got.Selected() != 1 || got.Player() != "Ada" {
		t.Errorf("restored index=%d score=%d selected=%d player=%q",
			got.Index(), got.Score(), got.Selected(), got.Player())
	}
	if !got.ShowNext() {
		t.Error("showNext should derive from a restored selection")
	}
}

func TestRestore_Defaults(t *testing.T) {
	got := Restore(DefaultQuestions(), state.NewBundle())
	if got.Index() != 0 || got.Score() != 0 || got.Selected() != NoAnswer || got.Player() != "Player" {
		t.Errorf("defaults: index=%d score=%d selected=%d player=%q",
			got.Index(), got.Score(), got.Selected(), got.Player())
	}
	if got.ShowNext() {
		t.Error("showNext should be false without a selection")
	}
}

func TestRestore_Clamps(t *testing.T) {
	b := state.NewBundle()
	b.PutInt(KeyCurrentQuestion, 42)
	b.PutInt(KeyScore, 99)
	b.PutInt(KeySelectedAnswer, 7)

	got := Restore(DefaultQuestions(), b)
	if got.Index() != 4 {
		t.Errorf("index = %d, want clamped to 4", got.Index())
	}
	if got.Score() != 5 {
		t.Errorf("score = %d, want clamped to 5", got.Score())
	}
	if got.Selected() != NoAnswer {
		t.Errorf("selected = %d, want reset to -1", got.Selected())
	}
}

func TestSetPlayer(t *testing.T) {
	s := NewSession(DefaultQuestions(), "Ada")
	s.SetPlayer("  Grace ")
	if s.Player() != "Grace" {
		t.Errorf("player = %q", s.Player())
	}
	s.SetPlayer("")
	if s.Player() != DefaultPlayerName {
		t.Errorf("blank rename should fall back, got %q", s.Player())
	}
}
