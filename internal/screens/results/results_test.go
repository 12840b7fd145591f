package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizmaster/internal/results"
	"github.com/abhisek/quizmaster/internal/router"
)

func testSummary(t *testing.T, score, total int) results.Summary {
	t.Helper()
	sum, err := results.Summarize(score, total)
	require.NoError(t, err)
	return sum
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testSummary(t, 9, 10))
	assert.Equal(t, "Results", s.Title())
}

func TestResultsScreen_Display(t *testing.T) {
	tests := []struct {
		score, total int
		want         []string
	}{
		{9, 10, []string{"Outstanding", "9/10", "90% Correct"}},
		{5, 10, []string{"Good Effort", "5/10", "50% Correct"}},
		{4, 10, []string{"Keep Practicing", "4/10", "40% Correct"}},
	}

	for _, tt := range tests {
		s := New(testSummary(t, tt.score, tt.total))
		view := s.View(80, 30)
		for _, w := range tt.want {
			assert.Contains(t, view, w)
		}
		assert.Contains(t, view, "Play Again")
		assert.Contains(t, view, "Share Score")
	}
}

func TestResultsScreen_EnterPlaysAgain(t *testing.T) {
	s := New(testSummary(t, 9, 10))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, PlayAgainMsg{}, cmd())
}

func TestResultsScreen_TabThenEnterShares(t *testing.T) {
	s := New(testSummary(t, 9, 10))
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ShareScoreMsg{Text: "I scored 9/10 (90%) on Quiz Master!"}, cmd())
}

func TestResultsScreen_FocusWraps(t *testing.T) {
	s := New(testSummary(t, 1, 2))
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 1, s.buttons.Focused)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 0, s.buttons.Focused)
}

func TestResultsScreen_Shortcuts(t *testing.T) {
	s := New(testSummary(t, 2, 3))

	_, cmd := s.Update(keyPress('s'))
	require.NotNil(t, cmd)
	assert.Equal(t, ShareScoreMsg{Text: "I scored 2/3 (67%) on Quiz Master!"}, cmd())

	_, cmd = s.Update(keyPress('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, PlayAgainMsg{}, cmd())
}

func TestResultsScreen_EscPops(t *testing.T) {
	s := New(testSummary(t, 2, 3))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := New(testSummary(t, 2, 3))
	var keys []string
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.True(t, strings.Contains(strings.Join(keys, " "), "Enter"))
}
