package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeCounter struct {
	requests int64
	failures int64
}

func (f *fakeCounter) Requests() int64 { return f.requests }
func (f *fakeCounter) Failures() int64 { return f.failures }

func TestModel(t *testing.T) {
	t.Run("View", func(t *testing.T) {
		m := NewModel("http://localhost:8001/", 8001, &fakeCounter{}, nil)
		view := m.View()

		for _, want := range []string{"You launch Tracy back as a server, on port 8001", "http://localhost:8001/", "Serving"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected view to contain %q, got:\n%s", want, view)
			}
		}
	})

	t.Run("tick refreshes counters", func(t *testing.T) {
		counter := &fakeCounter{}
		m := NewModel("http://localhost:8001/", 8001, counter, nil)

		counter.requests, counter.failures = 7, 2
		_, cmd := m.Update(tickMsg(time.Now()))

		if cmd == nil {
			t.Error("expected tick to schedule the next tick")
		}
		if m.requests != 7 || m.failures != 2 {
			t.Errorf("expected 7/2, got %d/%d", m.requests, m.failures)
		}
		if !strings.Contains(m.View(), "requests: 7") {
			t.Errorf("expected request count in view, got:\n%s", m.View())
		}
	})

	t.Run("quit keys", func(t *testing.T) {
		for _, msg := range []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'q'}},
			{Type: tea.KeyEnter},
			{Type: tea.KeyCtrlC},
		} {
			m := NewModel("http://localhost:8001/", 8001, &fakeCounter{}, nil)
			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("expected quit command for %s", msg.String())
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected QuitMsg for %s", msg.String())
			}
		}
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		m := NewModel("http://localhost:8001/", 8001, &fakeCounter{}, nil)
		if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); cmd != nil {
			t.Error("expected no command")
		}
	})

	t.Run("server failure", func(t *testing.T) {
		errs := make(chan error, 1)
		errs <- errors.New("accept: too many open files")

		m := NewModel("http://localhost:8001/", 8001, &fakeCounter{}, errs)
		msg := m.waitForServer()()
		m.Update(msg)

		if !m.stopped {
			t.Error("expected model to record the stop")
		}
		if !strings.Contains(m.View(), "too many open files") {
			t.Errorf("expected error in view, got:\n%s", m.View())
		}
	})

	t.Run("server shutdown", func(t *testing.T) {
		errs := make(chan error)
		close(errs)

		m := NewModel("http://localhost:8001/", 8001, &fakeCounter{}, errs)
		m.Update(m.waitForServer()())

		if !strings.Contains(m.View(), "Server stopped") {
			t.Errorf("expected stopped state in view, got:\n%s", m.View())
		}
	})
}
