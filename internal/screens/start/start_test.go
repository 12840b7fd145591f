package start

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartScreen_View(t *testing.T) {
	s := New("General Knowledge", 10)
	view := s.View(80, 24)
	assert.Contains(t, view, "General Knowledge")
	assert.Contains(t, view, "10 questions")
	assert.Contains(t, view, "Start quiz")
}

func TestStartScreen_EnterStarts(t *testing.T) {
	s := New("General Knowledge", 10)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, StartQuizMsg{}, cmd())
}

func TestStartScreen_QuitItem(t *testing.T) {
	s := New("General Knowledge", 10)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStartScreen_EmptyBank(t *testing.T) {
	s := New("Empty", 0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd(), "start item is disabled, Quit is selected")
}

func TestQuestionCount(t *testing.T) {
	assert.Equal(t, "1 question", questionCount(1))
	assert.Equal(t, "3 questions", questionCount(3))
}
