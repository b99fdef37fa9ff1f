package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/tui/keymap"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
	"github.com/Iron-Ham/dietplanner/internal/tui/view"
	"github.com/Iron-Ham/dietplanner/internal/util"
)

const (
	title    = "Diet Planner"
	subtitle = "Enter your details to generate a personalised meal plan"
)

// View renders the form screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(subtitle))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		b.WriteString(m.renderRow(i, f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderButton())
	b.WriteString("\n")

	if msg := m.controller.ErrorMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(msg))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styles.WarningMsg.Render("⚠ " + m.notice))
		b.WriteString("\n")
	}

	if m.controller.Plan() != nil {
		b.WriteString("\n")
		b.WriteString(styles.ResultBox.Width(m.viewport.Width).Render(m.viewport.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := m.helpBar.Render(view.HelpBarState{
		FocusNumeric: m.mode() == keymap.ModeNumeric,
		FocusChoice:  m.mode() == keymap.ModeChoice,
		Loading:      m.controller.Loading(),
		HasPlan:      m.controller.Plan() != nil,
	})
	b.WriteString(util.TruncateANSI(help, m.width))

	return b.String()
}

// renderRow renders one labelled form control.
func (m Model) renderRow(i int, f mealplan.Field) string {
	spec := mealplan.SpecFor(f)
	focused := i == m.focus

	marker := "  "
	label := styles.FieldLabel.Render(spec.Label)
	if focused {
		marker = styles.FocusMarker.Render("▸ ")
		label = styles.FieldLabelFocused.Render(spec.Label)
	}

	var value string
	switch spec.Kind {
	case mealplan.KindNumeric:
		value = m.inputs[i].View()
		if focused {
			value = styles.FieldValueFocused.Render(value)
		} else {
			value = styles.FieldValue.Render(value)
		}
	case mealplan.KindChoice:
		text := optionLabel(spec, m.form.Get(f))
		if focused {
			value = styles.FieldValueFocused.Render("‹ " + text + " ›")
		} else {
			value = styles.FieldValue.Render("  " + text)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, marker, label, value)
}

// renderButton renders the submit button with the spinner while loading.
func (m Model) renderButton() string {
	loading := m.controller.Loading()
	button := "  " + styles.SubmitButton(m.focus == m.buttonIndex(), loading)
	if loading {
		button += " " + m.spinner.View()
	}
	return button
}

// optionLabel returns the display label of value, or value itself when
// it is not one of the options.
func optionLabel(spec mealplan.FieldSpec, value string) string {
	if i := spec.OptionIndex(value); i >= 0 {
		return spec.Options[i].Label
	}
	return value
}
