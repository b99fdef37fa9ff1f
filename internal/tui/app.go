// Package tui implements the interactive meal-plan form.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/tui/keymap"
	"github.com/Iron-Ham/dietplanner/internal/tui/msg"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(model Model) *App {
	return &App{model: model}
}

// Run starts the TUI application and blocks until the user quits or ctx
// is canceled. Outstanding plan requests are abandoned on exit.
func (a *App) Run(ctx context.Context) error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := a.program.Run()
	if m, ok := final.(Model); ok {
		m.controller.Dispose()
	} else {
		a.model.controller.Dispose()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init starts the cursor blink and loads custom themes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, msg.DiscoverThemes())
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.resize(message.Width, message.Height)
		return m, nil

	case msg.PlanGeneratedMsg:
		if m.controller.Finish(message.Ticket, message.Plan, message.Err) {
			m.refreshPlan()
			m.viewport.GotoTop()
		}
		return m, nil

	case msg.ClearNoticeMsg:
		if message.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case msg.ThemesLoadedMsg:
		for _, err := range message.Errs {
			m.logger.Warn("skipping custom theme", "error", err.Error())
		}
		if m.themeName != "" && styles.IsValidTheme(m.themeName) {
			styles.SetActiveTheme(styles.ThemeName(m.themeName))
			m.spinner.Style = styles.Spinner
			m.refreshPlan()
		}
		return m, nil

	case spinner.TickMsg:
		// The spinner stops once the request settles.
		if !m.controller.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	default:
		// Cursor blink for the focused input.
		if m.mode() != keymap.ModeNumeric {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(message)
		return m, cmd
	}
}

// setNotice shows a transient notice and schedules its removal.
func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	return msg.ClearNoticeAfter(m.noticeID)
}
