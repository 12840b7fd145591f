package app

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizmaster/internal/bank"
	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	quizscreen "github.com/abhisek/quizmaster/internal/screens/quiz"
	resultsscreen "github.com/abhisek/quizmaster/internal/screens/results"
	"github.com/abhisek/quizmaster/internal/screens/start"
	"github.com/abhisek/quizmaster/internal/share"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Bank          bank.Bank
	FeedbackDelay time.Duration
	Logger        logrus.FieldLogger
	Sharer        *share.Sharer

	// Scheduler overrides the clock used for feedback delays.
	Scheduler quiz.Scheduler
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	log    logrus.FieldLogger
	toast  components.Toast
	width  int
	height int
}

// newAppModel creates a new AppModel with the start screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = quiz.DefaultFeedbackDelay
	}
	if opts.Sharer == nil {
		opts.Sharer = share.New(nil, opts.Logger)
	}

	startScreen := start.New(opts.Bank.Title, len(opts.Bank.Questions))
	return AppModel{
		router: router.New(startScreen),
		opts:   opts,
		log:    opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var toastCmd tea.Cmd
	m.toast, toastCmd = m.toast.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case components.ShowToastMsg:
		return m, toastCmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case start.StartQuizMsg:
		s, err := m.newQuizScreen()
		if err != nil {
			return m, m.fail("start quiz", err)
		}
		return m, m.router.Push(s)

	case resultsscreen.PlayAgainMsg:
		s, err := m.newQuizScreen()
		if err != nil {
			return m, m.fail("restart quiz", err)
		}
		m.log.Debug("restarting quiz")
		return m, m.router.Replace(s)

	case resultsscreen.ShareScoreMsg:
		return m, m.opts.Sharer.Share(msg.Text)
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(toastCmd, cmd)
}

// newQuizScreen starts a fresh session over the bank's questions.
func (m AppModel) newQuizScreen() (screen.Screen, error) {
	opts := []quiz.Option{
		quiz.WithFeedbackDelay(m.opts.FeedbackDelay),
		quiz.WithLogger(m.log),
	}
	if m.opts.Scheduler != nil {
		opts = append(opts, quiz.WithScheduler(m.opts.Scheduler))
	}
	session, err := quiz.New(m.opts.Bank.Questions, opts...)
	if err != nil {
		return nil, err
	}
	m.log.WithField("session", session.ID()).Info("quiz started")
	return quizscreen.New(session, m.opts.Bank.Title, m.log), nil
}

func (m AppModel) fail(action string, err error) tea.Cmd {
	m.log.WithError(err).Error(action)
	return components.ShowToast(fmt.Sprintf("Could not %s: %v", action, err), components.ToastError)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame: header, active screen, toast and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	toast := ""
	if m.toast.Visible {
		toast = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.toast.View())
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if toast != "" {
		contentHeight -= lipgloss.Height(toast)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if toast != "" {
		content = lipgloss.NewStyle().Height(contentHeight).Render(content) + "\n" + toast
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
