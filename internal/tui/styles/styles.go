// Package styles holds the lipgloss styles of the terminal UI and the
// theme machinery that rebuilds them from a color palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Package-level styles mirror the active theme. They are reassigned by
// SetActiveTheme.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color
	AccentColor    lipgloss.Color

	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldValue        lipgloss.Style
	FieldValueFocused lipgloss.Style
	FocusMarker       lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	Spinner lipgloss.Style

	ErrorMsg   lipgloss.Style
	WarningMsg lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	ResultBox    lipgloss.Style
	PlanHeading  lipgloss.Style
	PlanWater    lipgloss.Style
	SlotHeading  lipgloss.Style
	FoodName     lipgloss.Style
	FoodCategory lipgloss.Style
)

// HelpEntry renders one "key action" pair of the help bar.
func HelpEntry(key, action string) string {
	return HelpKey.Render(key) + " " + action
}

// SubmitButton renders the submit button for the given state. The label
// reads "Generating..." while a request is loading.
func SubmitButton(focused, loading bool) string {
	if loading {
		return ButtonDisabled.Render("Generating...")
	}
	if focused {
		return ButtonFocused.Render("Generate Meal Plan")
	}
	return Button.Render("Generate Meal Plan")
}
