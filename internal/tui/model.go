package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Iron-Ham/dietplanner/internal/logging"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/planclient"
	"github.com/Iron-Ham/dietplanner/internal/submission"
	"github.com/Iron-Ham/dietplanner/internal/tui/keymap"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
	"github.com/Iron-Ham/dietplanner/internal/tui/view"
	"github.com/Iron-Ham/dietplanner/internal/util"
)

// Layout constants
const (
	// FormHeight is the number of rows taken by everything except the plan.
	FormHeight = 18

	minPlanHeight = 3
	defaultWidth  = 80
	defaultHeight = 24
)

// Model holds the form screen state
type Model struct {
	// Core components
	ctx        context.Context
	client     planclient.Client
	controller *submission.Controller
	logger     *logging.Logger
	keymap     *keymap.Keymap

	// Form state. inputs is indexed like mealplan.Fields(); only numeric
	// rows use their entry.
	form   mealplan.FormState
	fields []mealplan.Field
	inputs []textinput.Model
	focus  int

	spinner  spinner.Model
	viewport viewport.Model
	planView *view.PlanView
	helpBar  *view.HelpBarView

	// UI state
	width     int
	height    int
	quitting  bool
	notice    string
	noticeID  int
	themeName string
}

// Options configures a new Model.
type Options struct {
	// Form is the initial form; the zero value selects mealplan.DefaultForm.
	Form *mealplan.FormState
	// Theme is the configured theme name, applied once custom themes load.
	Theme  string
	Logger *logging.Logger
}

// NewModel creates the form screen. ctx bounds every plan request it makes.
func NewModel(ctx context.Context, client planclient.Client, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	form := mealplan.DefaultForm()
	if opts.Form != nil {
		form = *opts.Form
	}

	fields := mealplan.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 8
		ti.Width = 10
		ti.SetValue(form.Get(f))
		inputs[i] = ti
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	m := Model{
		ctx:        ctx,
		client:     client,
		controller: submission.NewController(logger),
		logger:     logger,
		keymap:     keymap.DefaultKeymap(),
		form:       form,
		fields:     fields,
		inputs:     inputs,
		spinner:    sp,
		viewport:   viewport.New(defaultWidth-4, defaultHeight-FormHeight),
		planView:   view.NewPlanView(styles.NewTheme()),
		helpBar:    view.NewHelpBarView(),
		width:      defaultWidth,
		height:     defaultHeight,
		themeName:  opts.Theme,
	}
	m.setFocus(0)
	return m
}

// Form returns the current form values.
func (m Model) Form() mealplan.FormState {
	return m.form
}

// Controller returns the submission controller backing the screen.
func (m Model) Controller() *submission.Controller {
	return m.controller
}

// buttonIndex is the focus index of the submit button.
func (m Model) buttonIndex() int {
	return len(m.fields)
}

// focusedField returns the field with focus, or false on the button.
func (m Model) focusedField() (mealplan.Field, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return "", false
	}
	return m.fields[m.focus], true
}

// mode returns the keymap mode for the focused row.
func (m Model) mode() keymap.Mode {
	f, ok := m.focusedField()
	if !ok {
		return keymap.ModeButton
	}
	if mealplan.SpecFor(f).Kind == mealplan.KindNumeric {
		return keymap.ModeNumeric
	}
	return keymap.ModeChoice
}

// setFocus moves focus to index i, wrapping around the rows.
func (m *Model) setFocus(i int) {
	n := len(m.fields) + 1
	m.focus = ((i % n) + n) % n
	for idx := range m.inputs {
		if idx == m.focus && mealplan.SpecFor(m.fields[idx]).Kind == mealplan.KindNumeric {
			m.inputs[idx].Focus()
			m.inputs[idx].CursorEnd()
		} else {
			m.inputs[idx].Blur()
		}
	}
}

// setField stores value for f and mirrors it into the row's input.
func (m *Model) setField(f mealplan.Field, value string) {
	m.form = m.form.Update(f, value)
	for i, candidate := range m.fields {
		if candidate == f {
			m.inputs[i].SetValue(value)
			m.inputs[i].CursorEnd()
		}
	}
}

// resize fits the plan viewport to the terminal.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-FormHeight, minPlanHeight)
	m.refreshPlan()
}

// refreshPlan re-renders the stored plan into the viewport.
func (m *Model) refreshPlan() {
	plan := m.controller.Plan()
	if plan == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(util.TruncateLines(m.planView.Render(plan), m.viewport.Width))
}
