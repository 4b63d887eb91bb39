package quiz

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Question is one multiple-choice question. Correct indexes Options.
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// MaxOptions is the most options a question may have; each gets a number key.
const MaxOptions = 4

// ErrNoQuestions is returned for a bank with no questions.
var ErrNoQuestions = errors.New("question bank is empty")

// DefaultQuestions returns the built-in question bank.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:    "What is the capital of France?",
			Options: []string{"London", "Berlin", "Paris", "Madrid"},
			Correct: 2,
		},
		{
			Text:    "Which planet is known as the Red Planet?",
			Options: []string{"Venus", "Mars", "Jupiter", "Saturn"},
			Correct: 1,
		},
		{
			Text:    "What is 2 + 2?",
			Options: []string{"3", "4", "5", "6"},
			Correct: 1,
		},
		{
			Text:    "Who painted the Mona Lisa?",
			Options: []string{"Van Gogh", "Picasso", "Da Vinci", "Michelangelo"},
			Correct: 2,
		},
		{
			Text:    "What is the largest mammal?",
			Options: []string{"Elephant", "Blue Whale", "Giraffe", "Hippo"},
			Correct: 1,
		},
	}
}

// bankFile is the on-disk layout of a question bank.
type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadFile reads a YAML question bank. An empty path returns the
// built-in questions.
func LoadFile(path string) ([]Question, error) {
	if path == "" {
		return DefaultQuestions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML question bank.
func Parse(data []byte) ([]Question, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := Validate(f.Questions); err != nil {
		return nil, err
	}
	return f.Questions, nil
}

// Validate checks that every question has text, two to MaxOptions options
// and a correct index inside them.
func Validate(qs []Question) error {
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: missing text", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: need at least 2 options, got %d", i+1, len(q.Options))
		}
		if len(q.Options) > MaxOptions {
			return fmt.Errorf("question %d: at most %d options, got %d", i+1, MaxOptions, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: correct index %d out of range", i+1, q.Correct)
		}
	}
	return nil
}
