package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPollInterval is how often the authorize-wait screen retries the
// token exchange while the user authorizes the PIN on the portal.
const DefaultPollInterval = 5 * time.Second

// PollResult is the outcome of one token-exchange attempt.
type PollResult int

const (
	// PollPending means the user has not authorized the PIN yet
	PollPending PollResult = iota
	// PollAuthorized means tokens were issued
	PollAuthorized
	// PollFailed means the handshake cannot succeed (PIN expired or a
	// persistent failure) and polling should stop
	PollFailed
)

// PollFunc attempts the token exchange once. err is only inspected when
// the result is PollFailed.
type PollFunc func() (PollResult, error)

type pollTickMsg struct{}

type pollDoneMsg struct {
	result PollResult
	err    error
}

// authWaitModel is the bubbletea model for the authorize-wait screen: a
// PIN banner with portal instructions and a spinner while the token
// exchange is retried in the background.
type authWaitModel struct {
	spinner   spinner.Model
	pin       string
	portalURL string
	poll      PollFunc
	interval  time.Duration
	width     int

	attempts   int
	authorized bool
	aborted    bool
	err        error
}

func newAuthWaitModel(pin, portalURL string, poll PollFunc, interval time.Duration) authWaitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	return authWaitModel{
		spinner:   s,
		pin:       pin,
		portalURL: portalURL,
		poll:      poll,
		interval:  interval,
		width:     GetTerminalWidth(),
	}
}

func (m authWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.schedulePoll())
}

func (m authWaitModel) schedulePoll() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m authWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > MaxContentWidth {
			m.width = MaxContentWidth
		}
		return m, nil

	case pollTickMsg:
		poll := m.poll
		return m, func() tea.Msg {
			result, err := poll()
			return pollDoneMsg{result: result, err: err}
		}

	case pollDoneMsg:
		m.attempts++
		switch msg.result {
		case PollAuthorized:
			m.authorized = true
			return m, tea.Quit
		case PollFailed:
			m.err = msg.err
			return m, tea.Quit
		default:
			return m, m.schedulePoll()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m authWaitModel) View() string {
	if m.authorized || m.aborted || m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("ECOBEE AUTHORIZATION"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Your PIN: %s\n\n", PinStyle.Render(m.pin)))
	b.WriteString(HintStyle.Render(fmt.Sprintf("  1. Open %s", m.portalURL)))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("  2. Go to My Apps, Add Application, enter the PIN and click Authorize"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s Waiting for authorization (attempt %d, press q to abort)",
		m.spinner.View(), m.attempts+1))
	b.WriteString("\n")

	return BannerBorderStyle(m.width).Render(b.String())
}

// WaitForAuthorization renders the authorize-wait screen until the token
// exchange succeeds, fails permanently, or the user aborts. It reports
// whether tokens were issued.
func WaitForAuthorization(pin, portalURL string, poll PollFunc) (bool, error) {
	model := newAuthWaitModel(pin, portalURL, poll, DefaultPollInterval)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return false, fmt.Errorf("authorization UI failed: %w", err)
	}

	m, ok := final.(authWaitModel)
	if !ok {
		return false, fmt.Errorf("unexpected final model %T", final)
	}
	if m.err != nil {
		return false, m.err
	}
	if m.aborted {
		return false, fmt.Errorf("authorization aborted by user")
	}
	return m.authorized, nil
}
