// Package quiz is the screen that runs a quiz session.
package quiz

import (
	"errors"
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/results"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	resultsscreen "github.com/abhisek/quizmaster/internal/screens/results"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz session.
type QuizScreen struct {
	session *quiz.Session
	title   string
	keys    KeyMap
	log     logrus.FieldLogger

	snap   quiz.Snapshot
	choice components.MultiChoice
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen driving session. title names the question bank.
func New(session *quiz.Session, title string, log logrus.FieldLogger) *QuizScreen {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &QuizScreen{
		session: session,
		title:   title,
		keys:    DefaultKeyMap(),
		log:     log.WithField("screen", "quiz"),
	}
	s.sync(session.Snapshot())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.listen()
}

func (s *QuizScreen) Title() string {
	if s.title == "" {
		return "Quiz"
	}
	return s.title
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d  ", s.snap.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.snap.FeedbackVisible() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", len(s.snap.Question.Options)), Description: "Answer"},
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Close releases the session, cancelling any pending advance.
func (s *QuizScreen) Close() {
	s.session.Close()
}

// Session returns the session driven by this screen.
func (s *QuizScreen) Session() *quiz.Session {
	return s.session
}

// Snapshot returns the state the screen last rendered from.
func (s *QuizScreen) Snapshot() quiz.Snapshot {
	return s.snap
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return s.handleSnapshot(msg.Snapshot)

	case updatesClosedMsg:
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// listen waits for the next snapshot published by the session.
func (s *QuizScreen) listen() tea.Cmd {
	updates := s.session.Updates()
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return snapshotMsg{Snapshot: snap}
	}
}

func (s *QuizScreen) handleSnapshot(snap quiz.Snapshot) (screen.Screen, tea.Cmd) {
	s.sync(snap)

	if snap.State != quiz.StateCompleted {
		return s, s.listen()
	}

	summary, err := results.Summarize(snap.Score, snap.Total)
	if err != nil {
		s.log.WithError(err).Error("summarize results")
		s.errMsg = err.Error()
		return s, nil
	}
	s.log.WithFields(logrus.Fields{
		"score":      summary.Score,
		"total":      summary.Total,
		"percentage": summary.Percentage,
	}).Info("quiz finished")

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsscreen.New(summary)}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || key.Matches(msg, s.keys.Quit) {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.snap.State != quiz.StateAwaitingAnswer {
		return s, nil
	}

	if i, ok := optionIndex(msg.String()); ok {
		if i < len(s.snap.Question.Options) {
			return s.submit(i)
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Submit):
		return s.submit(s.choice.Cursor)
	case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit(answer int) (screen.Screen, tea.Cmd) {
	_, err := s.session.SelectAnswer(answer)
	switch {
	case errors.Is(err, quiz.ErrNotAwaitingAnswer), errors.Is(err, quiz.ErrAnswerOutOfRange):
		s.log.WithError(err).Debug("selection ignored")
		return s, nil
	case err != nil:
		s.log.WithError(err).Warn("selection failed")
		return s, nil
	}
	s.sync(s.session.Snapshot())
	return s, nil
}

// sync refreshes the rendered state from snap. The cursor resets when the
// question changes.
func (s *QuizScreen) sync(snap quiz.Snapshot) {
	cursor := s.choice.Cursor
	newQuestion := snap.Index != s.snap.Index || s.choice.Options == nil
	s.snap = snap

	s.choice = components.NewMultiChoice(snap.Question.Prompt, snap.Question.Options)
	if !newQuestion && cursor < len(snap.Question.Options) {
		s.choice.Cursor = cursor
	}
	if snap.FeedbackVisible() && snap.Selected >= 0 {
		s.choice = s.choice.Reveal(snap.Selected, snap.Question.CorrectAnswer)
	}
}
