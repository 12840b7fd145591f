package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 2500 * time.Millisecond

// ToastKind selects a toast's colour.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ShowToastMsg asks the app to display a transient notification.
type ShowToastMsg struct {
	Text string
	Kind ToastKind
}

// ShowToast returns a command that emits ShowToastMsg.
func ShowToast(text string, kind ToastKind) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Text: text, Kind: kind}
	}
}

// dismissToastMsg hides the toast with the matching id.
type dismissToastMsg struct {
	id int
}

// Toast is a single transient notification slot. A newer toast replaces
// the older one and older dismiss ticks are ignored.
type Toast struct {
	Text    string
	Kind    ToastKind
	Visible bool
	id      int
}

// Show displays text and schedules its dismissal.
func (t Toast) Show(text string, kind ToastKind) (Toast, tea.Cmd) {
	t.id++
	t.Text = text
	t.Kind = kind
	t.Visible = true
	id := t.id
	return t, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return dismissToastMsg{id: id}
	})
}

// Update handles ShowToastMsg and dismissal ticks.
func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return t.Show(msg.Text, msg.Kind)
	case dismissToastMsg:
		if msg.id == t.id {
			t.Visible = false
		}
	}
	return t, nil
}

// View renders the toast, or "" when hidden.
func (t Toast) View() string {
	if !t.Visible {
		return ""
	}
	fg := theme.Primary
	switch t.Kind {
	case ToastSuccess:
		fg = theme.Success
	case ToastError:
		fg = theme.Destructive
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Padding(0, 2).
		Render(t.Text)
}
