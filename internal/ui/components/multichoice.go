package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// MultiChoice renders a question with its options and tracks the cursor.
// Answer evaluation lives elsewhere; once Reveal is called the component
// colours the correct option and the chosen one.
type MultiChoice struct {
	Question     string
	Options      []string
	Cursor       int
	Revealed     bool
	ChosenIndex  int
	CorrectIndex int
}

// NewMultiChoice creates a multiple-choice component with the cursor on the
// first option.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update moves the cursor. It ignores input once revealed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// Reveal switches the component into feedback mode.
func (m MultiChoice) Reveal(chosen, correct int) MultiChoice {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
	m.Cursor = chosen
	return m
}

// OptionLabel returns the display label for option i: 1, 2, 3...
func OptionLabel(i int) string {
	return fmt.Sprintf("%d", i+1)
}

// View renders the question and options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabel(i), opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case m.Revealed && i == m.ChosenIndex:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case m.Revealed:
			b.WriteString(theme.Faded.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
