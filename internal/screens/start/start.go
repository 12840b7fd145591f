// Package start is the title screen.
package start

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// StartQuizMsg asks the app to begin a new quiz.
type StartQuizMsg struct{}

const titleFull = ` ___        _      __  __           _
/ _ \ _  _(_)___ |  \/  |__ _ ____| |_ ___ _ _
| (_) | || | |_ / | |\/| / _' (_-<  _/ -_) '_|
\__\_\\_,_|_/__| |_|  |_\__,_/__/\__\___|_|`

const titleCompact = "Q U I Z   M A S T E R"

// StartScreen shows the bank and a Start/Quit menu.
type StartScreen struct {
	menu      components.Menu
	bankTitle string
	count     int
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen for a bank with count questions.
func New(bankTitle string, count int) *StartScreen {
	items := []components.MenuItem{
		{Label: "Start quiz", Disabled: count == 0, Action: func() tea.Cmd {
			return func() tea.Msg { return StartQuizMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &StartScreen{
		menu:      components.NewMenu(items),
		bankTitle: bankTitle,
		count:     count,
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Home"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := width < 70 || height < 18

	title := titleFull
	if compact {
		title = titleCompact
	}

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(title)))

	info := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.bankTitle) + "\n" +
		theme.Faded.Render(questionCount(s.count))
	sections = append(sections, components.Card(info, cw))

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Render(s.menu.View()))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func questionCount(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}
