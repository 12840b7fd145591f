// Package results is the screen shown after the last question.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/results"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// PlayAgainMsg asks the app to start a fresh quiz in place of this screen.
type PlayAgainMsg struct{}

// ShareScoreMsg asks the app to share Text.
type ShareScoreMsg struct {
	Text string
}

// KeyMap defines the results screen bindings.
type KeyMap struct {
	PlayAgain key.Binding
	Share     key.Binding
	Back      key.Binding
}

// DefaultKeyMap returns the default results bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayAgain: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Play again")),
		Share:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Share")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home")),
	}
}

// ResultsScreen displays the final score.
type ResultsScreen struct {
	summary results.Summary
	buttons components.ButtonRow
	keys    KeyMap
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for summary.
func New(summary results.Summary) *ResultsScreen {
	s := &ResultsScreen{summary: summary, keys: DefaultKeyMap()}
	s.buttons = components.NewButtonRow(
		components.NewButton("Play Again", true, s.playAgain),
		components.NewButton("Share Score", false, s.share),
	)
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

// Summary returns the summary being displayed.
func (s *ResultsScreen) Summary() results.Summary {
	return s.summary
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Move"},
		{Key: "Enter", Description: "Press"},
		{Key: "r", Description: "Play again"},
		{Key: "s", Description: "Share"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.PlayAgain):
		return s, s.playAgain()
	case key.Matches(kmsg, s.keys.Share):
		return s, s.share()
	case key.Matches(kmsg, s.keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(kmsg)
	return s, cmd
}

func (s *ResultsScreen) playAgain() tea.Cmd {
	return func() tea.Msg { return PlayAgainMsg{} }
}

func (s *ResultsScreen) share() tea.Cmd {
	text := s.summary.ShareText()
	return func() tea.Msg { return ShareScoreMsg{Text: text} }
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	toneColor := theme.ForTone(sum.Tone.String())

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("🏆  Quiz Complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(toneColor).
		Bold(true).
		Render(fmt.Sprintf("%s %s", sum.Tier.Emoji(), sum.Message())))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Width(cw - 8).
		Align(lipgloss.Center).
		Background(theme.Muted).
		Padding(1, 0).
		Render(
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render(fmt.Sprintf("%d/%d", sum.Score, sum.Total)) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("%d%% Correct", sum.Percentage)),
		)
	b.WriteString(score)
	b.WriteString("\n\n")

	b.WriteString(s.buttons.View())

	card := components.AccentCard(b.String(), cw, toneColor)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
