package quiz

import (
	"fmt"
	"strings"

	"github.com/marcus/noteboard/internal/state"
)

// Bundle keys and their defaults when absent.
const (
	KeyCurrentQuestion = "current_question"
	KeyScore           = "score"
	KeySelectedAnswer  = "selected_answer"
	KeyPlayerName      = "player_name"

	DefaultPlayerName = "Player"
	NoAnswer          = -1
)

// Toast texts shown after each answer.
const (
	MsgCorrect   = "Correct!"
	MsgIncorrect = "Incorrect!"
)

// Result describes the outcome of an answer.
type Result struct {
	Index   int
	Correct bool
}

// Message is the toast text for the result.
func (r Result) Message() string {
	if r.Correct {
		return MsgCorrect
	}
	return MsgIncorrect
}

// Session is one player's run through a question bank.
type Session struct {
	questions []Question
	player    string
	current   int
	score     int
	selected  int
}

// NewSession starts a run at the first question.
func NewSession(questions []Question, player string) *Session {
	return &Session{
		questions: questions,
		player:    ResolveName(player),
		selected:  NoAnswer,
	}
}

// ResolveName trims name and falls back to DefaultPlayerName when blank.
func ResolveName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// Player returns the resolved player name.
func (s *Session) Player() string { return s.player }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the bank.
func (s *Session) Total() int { return len(s.questions) }

// Index returns the 0-based index of the current question.
func (s *Session) Index() int { return s.current }

// Selected returns the chosen option for the current question, or NoAnswer.
func (s *Session) Selected() int { return s.selected }

// SetPlayer renames the player mid-run.
func (s *Session) SetPlayer(name string) {
	s.player = ResolveName(name)
}

// Question returns the current question.
func (s *Session) Question() Question {
	return s.questions[s.current]
}

// ShowNext reports whether the current question has been answered.
func (s *Session) ShowNext() bool {
	return s.selected != NoAnswer
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.current >= len(s.questions)-1
}

// NextLabel is the caption of the advance button.
func (s *Session) NextLabel() string {
	if s.IsLast() {
		return "Finish Quiz"
	}
	return "Next Question"
}

// Answer selects option i. Each question accepts one answer; repeat or
// out-of-range selections return false.
func (s *Session) Answer(i int) (Result, bool) {
	if s.selected != NoAnswer {
		return Result{}, false
	}
	q := s.Question()
	if i < 0 || i >= len(q.Options) {
		return Result{}, false
	}
	s.selected = i
	r := Result{Index: i, Correct: i == q.Correct}
	if r.Correct {
		s.score++
	}
	return r, true
}

// Next advances to the following question. It returns true when the run is
// over, in which case the session stays on the last question.
func (s *Session) Next() (finished bool) {
	if !s.ShowNext() {
		return false
	}
	if s.IsLast() {
		return true
	}
	s.current++
	s.selected = NoAnswer
	return false
}

// CompletionMessage is the toast shown when the run ends.
func (s *Session) CompletionMessage() string {
	return fmt.Sprintf("Quiz completed! Final score: %d/%d", s.score, len(s.questions))
}

// Save writes the run into a bundle.
func (s *Session) Save() state.Bundle {
	b := state.NewBundle()
	b.PutInt(KeyCurrentQuestion, s.current)
	b.PutInt(KeyScore, s.score)
	b.PutInt(KeySelectedAnswer, s.selected)
	b.PutString(KeyPlayerName, s.player)
	return b
}

// Restore rebuilds a run from a bundle. Missing keys take their defaults;
// values that do not fit the bank are clamped.
func Restore(questions []Question, b state.Bundle) *Session {
	s := &Session{
		questions: questions,
		player:    ResolveName(b.GetString(KeyPlayerName, DefaultPlayerName)),
		current:   b.GetInt(KeyCurrentQuestion, 0),
		score:     b.GetInt(KeyScore, 0),
		selected:  b.GetInt(KeySelectedAnswer, NoAnswer),
	}

	if len(questions) == 0 {
		s.current, s.score, s.selected = 0, 0, NoAnswer
		return s
	}
	if s.current < 0 {
		s.current = 0
	}
	if s.current >= len(questions) {
		s.current = len(questions) - 1
	}
	if s.score < 0 {
		s.score = 0
	}
	if s.score > len(questions) {
		s.score = len(questions)
	}
	if s.selected < NoAnswer || s.selected >= len(s.Question().Options) {
		s.selected = NoAnswer
	}
	return s
}
