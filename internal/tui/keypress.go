package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/tui/keymap"
	"github.com/Iron-Ham/dietplanner/internal/tui/msg"
)

// handleKeypress processes keyboard input
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	command, ok := m.keymap.GetBinding(key, m.mode())
	if !ok {
		return m.handleTyping(key)
	}

	switch command {
	case keymap.CmdQuit:
		m.controller.Dispose()
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdNextField:
		m.setFocus(m.focus + 1)
		return m, nil

	case keymap.CmdPrevField:
		m.setFocus(m.focus - 1)
		return m, nil

	case keymap.CmdStepUp, keymap.CmdStepDown:
		f, _ := m.focusedField()
		delta := 1
		if command == keymap.CmdStepDown {
			delta = -1
		}
		m.form = m.form.Step(f, delta)
		m.setField(f, m.form.Get(f))
		return m, nil

	case keymap.CmdOptionNext, keymap.CmdOptionPrev:
		f, _ := m.focusedField()
		delta := 1
		if command == keymap.CmdOptionPrev {
			delta = -1
		}
		m.setField(f, mealplan.SpecFor(f).Cycle(m.form.Get(f), delta))
		return m, nil

	case keymap.CmdPageUp, keymap.CmdPageDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd

	case keymap.CmdSubmit:
		return m.submit()
	}

	return m, nil
}

// handleTyping forwards editing keys to the focused numeric input. Runes
// that would not form a number are dropped.
func (m Model) handleTyping(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode() != keymap.ModeNumeric {
		return m, nil
	}
	f, _ := m.focusedField()
	input := m.inputs[m.focus]

	switch key.Type {
	case tea.KeyRunes:
		if key.Paste || !mealplan.SpecFor(f).AcceptsNumericInput(input.Value(), string(key.Runes)) {
			return m, nil
		}
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
	default:
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = input.Update(key)
	m.form = m.form.Update(f, m.inputs[m.focus].Value())
	return m, cmd
}

// submit starts a plan request for the current form. It is a no-op while
// a request is loading.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.controller.Loading() {
		return m, nil
	}
	if err := m.form.Check(); err != nil {
		return m, m.setNotice(checkNotice(err))
	}

	ticket, ok := m.controller.Begin(m.form)
	if !ok {
		return m, nil
	}
	m.refreshPlan()
	m.notice = ""
	return m, tea.Batch(msg.GeneratePlan(m.ctx, m.client, ticket), m.spinner.Tick)
}

// checkNotice phrases a form constraint violation for the notice line.
func checkNotice(err error) string {
	var verr *errors.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return verr.Field + " " + verr.Message()
	}
	return err.Error()
}
