package quiz

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultFeedbackDelay is how long feedback stays visible before the
// session advances.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// State is the phase of the current question.
type State int

const (
	StateAwaitingAnswer  State = iota // Waiting for a selection
	StateShowingFeedback              // Selection made, advance pending
	StateCompleted                    // Last question answered, result resolved
	StateClosed                       // Torn down before completion
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateShowingFeedback:
		return "showing-feedback"
	case StateCompleted:
		return "completed"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Feedback describes the outcome of an accepted selection.
type Feedback struct {
	Selected      int
	CorrectAnswer int
	Correct       bool
	Last          bool
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	SessionID string
	Index     int
	Total     int
	Score     int
	State     State

	// Selected is the chosen option, or -1 when no answer is recorded for
	// the current question.
	Selected int

	Question Question
}

// FeedbackVisible reports whether the current selection is being shown.
func (s Snapshot) FeedbackVisible() bool {
	return s.State == StateShowingFeedback || s.State == StateCompleted
}

// Correct reports whether the recorded selection is the right answer.
func (s Snapshot) Correct() bool {
	return s.Selected >= 0 && s.Question.IsCorrect(s.Selected)
}

// Last reports whether the current question is the final one.
func (s Snapshot) Last() bool {
	return s.Index == s.Total-1
}

// Option configures a Session.
type Option func(*Session)

// WithFeedbackDelay sets the delay between a selection and the advance.
func WithFeedbackDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) {
		if sched != nil {
			s.sched = sched
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// Session is a single playthrough of an ordered list of questions.
//
// Selections are accepted only while the session is awaiting an answer, so at
// most one deferred advance is ever pending. The advance fires on the
// scheduler's goroutine; all state is guarded by mu.
type Session struct {
	id        string
	questions []Question
	delay     time.Duration
	sched     Scheduler
	log       logrus.FieldLogger

	mu       sync.Mutex
	state    State
	index    int
	score    int
	selected int
	pending  Timer
	gen      uint64
	final    int
	closed   bool
	done     chan struct{}
	closedCh chan struct{}
	updates  chan Snapshot
}

// New creates a session over questions. The list is copied.
func New(questions []Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	s := &Session{
		id:        uuid.New().String(),
		questions: cloneQuestions(questions),
		delay:     DefaultFeedbackDelay,
		sched:     ClockScheduler{},
		log:       discardLogger(),
		state:     StateAwaitingAnswer,
		selected:  -1,
		done:      make(chan struct{}),
		closedCh:  make(chan struct{}),
		updates:   make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", s.id)
	s.log.WithFields(logrus.Fields{
		"questions": len(s.questions),
		"delay":     s.delay.String(),
	}).Debug("session created")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Total returns the number of questions.
func (s *Session) Total() int {
	return len(s.questions)
}

// SelectAnswer records answer for the current question.
//
// While feedback is showing, after completion, or for an out-of-range index
// the call changes nothing and returns an error. Otherwise the score is
// updated immediately and the advance is scheduled after the feedback delay.
func (s *Session) SelectAnswer(answer int) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state == StateClosed {
		return Feedback{}, ErrSessionClosed
	}
	if s.state != StateAwaitingAnswer {
		return Feedback{}, ErrNotAwaitingAnswer
	}

	q := s.questions[s.index]
	if answer < 0 || answer >= len(q.Options) {
		return Feedback{}, fmt.Errorf("%w: %d not in 0..%d", ErrAnswerOutOfRange, answer, len(q.Options)-1)
	}

	correct := q.IsCorrect(answer)
	s.selected = answer
	s.state = StateShowingFeedback
	if correct {
		s.score++
	}

	s.gen++
	gen := s.gen
	s.pending = s.sched.AfterFunc(s.delay, func() { s.advance(gen) })

	s.log.WithFields(logrus.Fields{
		"index":   s.index,
		"answer":  answer,
		"correct": correct,
		"score":   s.score,
	}).Debug("answer selected")

	return Feedback{
		Selected:      answer,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       correct,
		Last:          s.index == len(s.questions)-1,
	}, nil
}

// advance runs when the feedback delay for generation gen elapses.
func (s *Session) advance(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A stale or cancelled callback must not touch the session.
	if s.closed || gen != s.gen || s.state != StateShowingFeedback {
		return
	}
	s.pending = nil

	if s.index == len(s.questions)-1 {
		s.state = StateCompleted
		s.final = s.score
		close(s.done)
		s.log.WithFields(logrus.Fields{
			"score": s.final,
			"total": len(s.questions),
		}).Debug("session completed")
	} else {
		s.index++
		s.selected = -1
		s.state = StateAwaitingAnswer
		s.log.WithField("index", s.index).Debug("advanced")
	}

	s.publishLocked()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	q := s.questions[s.index]
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return Snapshot{
		SessionID: s.id,
		Index:     s.index,
		Total:     len(s.questions),
		Score:     s.score,
		State:     s.state,
		Selected:  s.selected,
		Question:  Question{Prompt: q.Prompt, Options: opts, CorrectAnswer: q.CorrectAnswer},
	}
}

// publishLocked delivers the latest snapshot, replacing an unread one.
func (s *Session) publishLocked() {
	if s.closed {
		return
	}
	snap := s.snapshotLocked()
	select {
	case s.updates <- snap:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- snap:
		default:
		}
	}
}

// Updates delivers a snapshot after every advance. Only the latest unread
// snapshot is kept. The channel is closed by Close.
func (s *Session) Updates() <-chan Snapshot {
	return s.updates
}

// Done is closed once the final score is available.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Result returns the final score and whether the session has completed.
func (s *Session) Result() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return 0, false
	}
	return s.final, true
}

// Wait blocks until the session completes, is closed, or ctx is done.
func (s *Session) Wait(ctx context.Context) (int, error) {
	select {
	case <-s.done:
		score, _ := s.Result()
		return score, nil
	case <-s.closedCh:
		if score, ok := s.Result(); ok {
			return score, nil
		}
		return 0, ErrSessionClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close cancels any pending advance and releases the session. It is safe
// to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
	if s.state != StateCompleted {
		s.state = StateClosed
	}
	close(s.closedCh)
	close(s.updates)
	s.log.WithField("state", s.state.String()).Debug("session closed")
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
