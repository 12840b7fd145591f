package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	cw := components.ContentWidth(width)
	snap := s.snap

	var b strings.Builder

	// Progress line.
	bar := components.QuestionProgress(snap.Index, snap.Total, cw-14)
	score := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Score: %d", snap.Score))
	progress := lipgloss.JoinHorizontal(lipgloss.Center, bar.View(), "  ", score)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress))
	b.WriteString("\n\n")

	// Question card with feedback colouring on the border.
	border := theme.Border
	if snap.FeedbackVisible() {
		if snap.Correct() {
			border = theme.Success
		} else {
			border = theme.Destructive
		}
	}
	card := components.AccentCard(lipgloss.NewStyle().Align(lipgloss.Left).Render(s.choice.View()), cw, border)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.statusLine()))

	return b.String()
}

// statusLine renders the hint under the card, or the verdict while
// feedback is visible.
func (s *QuizScreen) statusLine() string {
	snap := s.snap
	if !snap.FeedbackVisible() {
		return theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(snap.Question.Options)))
	}
	if snap.Correct() {
		return theme.Correct.Render("Correct!")
	}
	answer := ""
	if q := snap.Question; q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		answer = q.Options[q.CorrectAnswer]
	}
	return theme.Incorrect.Render("Not quite") + "\n" +
		theme.Faded.Render("Correct answer: "+answer)
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Destructive).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
