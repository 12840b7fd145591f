package quiz

import "github.com/abhisek/quizmaster/internal/quiz"

// snapshotMsg carries a snapshot published after the feedback delay.
type snapshotMsg struct {
	Snapshot quiz.Snapshot
}

// updatesClosedMsg is sent when the session's update stream ends.
type updatesClosedMsg struct{}
