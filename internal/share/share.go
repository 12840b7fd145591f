// Package share delivers the results share text to the clipboard.
package share

import (
	"errors"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizmaster/internal/ui/components"
)

// Toast texts shown after a share attempt.
const (
	CopiedText = "Score copied to clipboard!"
	FailedText = "Could not copy score"
)

// ErrEmptyText is returned when there is nothing to share.
var ErrEmptyText = errors.New("share: empty text")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard utility (pbcopy, xclip,
// wl-copy, clip.exe).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Sharer copies share text and reports the outcome as a toast.
type Sharer struct {
	clip Clipboard
	log  logrus.FieldLogger

	// Fallback enables the terminal's OSC 52 clipboard when the system
	// clipboard fails, which covers SSH sessions.
	Fallback bool
}

// New returns a Sharer writing to clip with OSC 52 fallback enabled. A nil
// clip means the system clipboard.
func New(clip Clipboard, log logrus.FieldLogger) *Sharer {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Sharer{clip: clip, log: log, Fallback: true}
}

// Share returns a command that copies text and then shows a toast.
func (s *Sharer) Share(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			s.log.WithError(ErrEmptyText).Warn("share skipped")
			return components.ShowToastMsg{Text: FailedText, Kind: components.ToastError}
		}

		err := s.clip.WriteAll(text)
		if err == nil {
			s.log.Debug("share text copied to system clipboard")
			return components.ShowToastMsg{Text: CopiedText, Kind: components.ToastSuccess}
		}

		if !s.Fallback {
			s.log.WithError(err).Warn("clipboard write failed")
			return components.ShowToastMsg{Text: FailedText, Kind: components.ToastError}
		}

		s.log.WithError(err).Debug("system clipboard failed, using OSC 52")
		return tea.BatchMsg{
			tea.SetClipboard(text),
			components.ShowToast(CopiedText, components.ToastSuccess),
		}
	}
}
