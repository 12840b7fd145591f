package share

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizmaster/internal/ui/components"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func TestShare_Copies(t *testing.T) {
	clip := &fakeClipboard{}
	s := New(clip, nil)

	msg := s.Share("I scored 9/10 (90%) on Quiz Master!")()

	assert.Equal(t, []string{"I scored 9/10 (90%) on Quiz Master!"}, clip.written)
	assert.Equal(t, components.ShowToastMsg{Text: CopiedText, Kind: components.ToastSuccess}, msg)
}

func TestShare_FallsBackToTerminal(t *testing.T) {
	s := New(&fakeClipboard{err: errors.New("no xclip")}, nil)

	msg := s.Share("I scored 1/2 (50%) on Quiz Master!")()

	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok, "expected a batch, got %T", msg)
	require.Len(t, batch, 2)
	assert.Equal(t, components.ShowToastMsg{Text: CopiedText, Kind: components.ToastSuccess}, batch[1]())
}

func TestShare_NoFallback(t *testing.T) {
	s := New(&fakeClipboard{err: errors.New("no xclip")}, nil)
	s.Fallback = false

	msg := s.Share("text")()

	assert.Equal(t, components.ShowToastMsg{Text: FailedText, Kind: components.ToastError}, msg)
}

func TestShare_EmptyText(t *testing.T) {
	clip := &fakeClipboard{}
	s := New(clip, nil)

	msg := s.Share("")()

	assert.Empty(t, clip.written)
	assert.Equal(t, components.ShowToastMsg{Text: FailedText, Kind: components.ToastError}, msg)
}
