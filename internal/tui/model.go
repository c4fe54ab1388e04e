// Package tui is the interactive terminal front end of the shorten form.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikhailRaia/shortener-client/internal/form"
)

const placeholder = "Enter your long URL here... (e.g., https://example.com/very/long/path)"

type (
	changedMsg    struct{}
	submitDoneMsg struct{ err error }
	actionDoneMsg struct {
		action string
		err    error
	}
)

// Model is the Bubble Tea model wrapping a form.Form.
type Model struct {
	ctx     context.Context
	form    *form.Form
	input   textinput.Model
	changes chan struct{}
	pending bool
	note    string
	width   int
}

// New builds the model and subscribes it to form changes, so timer-driven
// updates such as the copy acknowledgement revert are redrawn.
func New(ctx context.Context, f *form.Form) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	changes := make(chan struct{}, 1)
	f.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:     ctx,
		form:    f,
		input:   ti,
		changes: changes,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case changedMsg:
		m.syncInput()
		return m, waitForChange(m.changes)

	case submitDoneMsg:
		m.pending = false
		m.syncInput()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.note = msg.action + " failed: " + msg.err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.pending {
			return m, nil
		}
		m.pending = true
		m.note = ""
		return m, m.submit()

	case tea.KeyCtrlY:
		m.note = ""
		return m, m.act("Copy", m.form.Copy)

	case tea.KeyCtrlO:
		m.note = ""
		return m, m.act("Open", m.form.Open)
	}

	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.form.State().Input {
		m.note = ""
		m.form.SetInput(m.input.Value())
	}
	return m, cmd
}

// syncInput mirrors the form's input into the widget; a successful submission
// clears it.
func (m *Model) syncInput() {
	if v := m.form.State().Input; v != m.input.Value() {
		m.input.SetValue(v)
	}
}

func (m Model) submit() tea.Cmd {
	ctx, f := m.ctx, m.form
	return func() tea.Msg {
		return submitDoneMsg{err: f.Submit(ctx)}
	}
}

func (m Model) act(name string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		err := fn()
		if err == nil || errors.Is(err, form.ErrNoResult) {
			return actionDoneMsg{}
		}
		return actionDoneMsg{action: name, err: err}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return changedMsg{}
	}
}
