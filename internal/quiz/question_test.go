package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions()
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
	if err := Validate(qs); err != nil {
		t.Fatalf("built-in bank invalid: %v", err)
	}
	if qs[0].Options[qs[0].Correct] != "Paris" {
		t.Errorf("first answer = %q, want Paris", qs[0].Options[qs[0].Correct])
	}
	if qs[4].Options[qs[4].Correct] != "Blue Whale" {
		t.Errorf("last answer = %q, want Blue Whale", qs[4].Options[qs[4].Correct])
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
questions:
  - question: "Largest ocean?"
    options: ["Atlantic", "Pacific", "Indian"]
    correct: 1
  - question: "Boiling point of water at sea level (C)?"
    options: ["90", "100"]
    correct: 1
`)
	qs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Text != "Largest ocean?" || qs[0].Correct != 1 {
		t.Errorf("unexpected first question: %+v", qs[0])
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "questions: []", "empty"},
		{"no text", "questions:\n  - options: [a, b]\n    correct: 0", "missing text"},
		{"one option", "questions:\n  - question: q\n    options: [a]\n    correct: 0", "at least 2"},
		{"too many options", "questions:\n  - question: q\n    options: [a, b, c, d, e]\n    correct: 0", "at most 4"},
		{"bad index", "questions:\n  - question: q\n    options: [a, b]\n    correct: 2", "out of range"},
		{"bad yaml", "questions: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_EmptyIsErrNoQuestions(t *testing.T) {
	_, err := Parse([]byte("questions: []"))
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("got %v, want ErrNoQuestions", err)
	}
}

func TestLoadFile(t *testing.T) {
	qs, err := LoadFile("")
	if err != nil || len(qs) != 5 {
		t.Fatalf("empty path should give defaults, got %d, %v", len(qs), err)
	}

	path := filepath.Join(t.TempDir(), "bank.yaml")
	content := "questions:\n  - question: q\n    options: [a, b]\n    correct: 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	qs, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions, want 1", len(qs))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
