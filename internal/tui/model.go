package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Session types, as sent with completion notifications.
const (
	SessionWork  = "work"
	SessionBreak = "break"
)

// Config sets session lengths.
type Config struct {
	Work  time.Duration
	Break time.Duration
	Task  string

	// Interval is the tick rate. Zero means one second.
	Interval time.Duration
}

// Model is the Bubbletea model for the timer.
type Model struct {
	cfg      Config
	notifier Notifier

	session   string
	timer     timer.Model
	progress  progress.Model
	help      help.Model
	completed int
	lastErr   error
	quitting  bool
}

// NewModel creates a timer that starts with a work session.
func NewModel(cfg Config, notifier Notifier) Model {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	m := Model{
		cfg:      cfg,
		notifier: notifier,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
	}
	m.startSession(SessionWork)
	return m
}

func (m *Model) startSession(session string) {
	m.session = session
	m.timer = timer.NewWithInterval(m.sessionLength(), m.cfg.Interval)
}

func (m Model) sessionLength() time.Duration {
	if m.session == SessionBreak {
		return m.cfg.Break
	}
	return m.cfg.Work
}

// Session returns the current session type.
func (m Model) Session() string {
	return m.session
}

// Completed returns the number of finished work sessions.
func (m Model) Completed() int {
	return m.completed
}

// Init starts the timer.
func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			return m, m.timer.Toggle()
		case key.Matches(msg, keys.Skip):
			m.startSession(m.nextSession())
			return m, m.timer.Init()
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-10, 60)
		return m, nil

	case timer.TimeoutMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		return m, m.finishSession()

	case notifiedMsg:
		m.lastErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

func (m Model) nextSession() string {
	if m.session == SessionWork {
		return SessionBreak
	}
	return SessionWork
}

// finishSession notifies the daemon and moves to the next session.
func (m *Model) finishSession() tea.Cmd {
	var notify tea.Cmd
	minutes := int(m.sessionLength().Minutes())

	if m.session == SessionWork {
		m.completed++
		var task *string
		if m.cfg.Task != "" {
			t := m.cfg.Task
			task = &t
		}
		notify = notifyCmd(m.notifier, SessionWork, minutes, task)
	} else {
		notify = notifyCmd(m.notifier, SessionBreak, minutes, nil)
	}

	m.startSession(m.nextSession())
	return tea.Batch(notify, m.timer.Init())
}

func (m Model) percent() float64 {
	total := m.sessionLength()
	if total <= 0 {
		return 0
	}
	return 1 - float64(m.timer.Timeout)/float64(total)
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	phase := workPhaseStyle.Render("🎯 Focus")
	if m.session == SessionBreak {
		phase = breakPhaseStyle.Render("☕ Break")
	}
	state := ""
	if !m.timer.Running() {
		state = dimStyle.Render(" (paused)")
	}
	b.WriteString(phase + state + "\n\n")
	b.WriteString(clockStyle.Render(formatClock(m.timer.Timeout)) + "\n\n")
	b.WriteString(m.progress.ViewAs(m.percent()) + "\n\n")

	if m.cfg.Task != "" {
		b.WriteString(dimStyle.Render("Task: ") + taskStyle.Render(m.cfg.Task) + "\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Completed sessions: %d", m.completed)) + "\n")
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Notification failed: "+m.lastErr.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{keys.Pause, keys.Skip, keys.Quit}))

	return lipgloss.NewStyle().Margin(1, 2).Render(frameStyle.Render(b.String()))
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
