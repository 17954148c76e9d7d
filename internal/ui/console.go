package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RefreshInterval is how often the console polls the request counters.
const RefreshInterval = 500 * time.Millisecond

// Counter exposes the server's request counters.
type Counter interface {
	Requests() int64
	Failures() int64
}

// Model represents the console state.
type Model struct {
	url      string
	port     int
	stats    Counter
	errs     <-chan error
	started  time.Time
	requests int64
	failures int64
	stopped  bool
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a console for the server at url. errs is the server's error channel.
func NewModel(url string, port int, stats Counter, errs <-chan error) *Model {
	return &Model{
		url:     url,
		port:    port,
		stats:   stats,
		errs:    errs,
		started: time.Now(),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts polling the counters and waiting on the server.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForServer())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case Msg:
		switch msg.kind {
		case MsgTick:
			m.refresh()
			return m, tick()
		case MsgServerStopped:
			m.stopped = true
			if err, ok := msg.data.(error); ok {
				m.err = err
			}
			m.refresh()
		}
	}
	return m, nil
}

// View renders the console.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Tracy"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("You launch Tracy back as a server, on port %d\n", m.port))
	b.WriteString(fmt.Sprintf("Front-end: %s\n", m.url))

	stats := fmt.Sprintf("requests: %d   failures: %d   uptime: %s",
		m.requests, m.failures, time.Since(m.started).Truncate(time.Second))
	b.WriteString(styles.box.Render(stats))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.err.Render(fmt.Sprintf("✗ Server failed: %v", m.err)))
	case m.stopped:
		b.WriteString(styles.warn.Render("Server stopped"))
	default:
		b.WriteString(styles.ok.Render("✓ Serving"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) refresh() {
	if m.stats == nil {
		return
	}
	m.requests = m.stats.Requests()
	m.failures = m.stats.Failures()
}

func (m *Model) waitForServer() tea.Cmd {
	if m.errs == nil {
		return nil
	}
	return func() tea.Msg {
		return serverStoppedMsg(<-m.errs)
	}
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Run shows the console until the user quits or ctx is done.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running console: %w", err)
	}
	return nil
}
