package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoQuestions is returned when a session is created without questions.
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrInvalidQuestion is returned when a question breaks its invariants.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrNotAwaitingAnswer is returned when an answer arrives while feedback is
	// showing or after the quiz ended. The session is left untouched.
	ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")
	// ErrAnswerOutOfRange is returned for an answer index outside the options.
	ErrAnswerOutOfRange = errors.New("answer index out of range")
	// ErrSessionClosed is returned once the session has been torn down.
	ErrSessionClosed = errors.New("session closed")
)

// MinOptions is the smallest number of options a question may have.
const MinOptions = 2

// Question is a single multiple-choice question.
type Question struct {
	Prompt        string
	Options       []string
	CorrectAnswer int
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) < MinOptions {
		return fmt.Errorf("%w: %d options, need at least %d", ErrInvalidQuestion, len(q.Options), MinOptions)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct answer %d outside 0..%d", ErrInvalidQuestion, q.CorrectAnswer, len(q.Options)-1)
	}
	return nil
}

// IsCorrect reports whether answer is the correct option.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		out[i] = Question{Prompt: q.Prompt, Options: opts, CorrectAnswer: q.CorrectAnswer}
	}
	return out
}
