package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type ThemedStyles struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color
	AccentColor    lipgloss.Color

	// Convenience styles for colors
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Form rows
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldValue        lipgloss.Style
	FieldValueFocused lipgloss.Style
	FocusMarker       lipgloss.Style

	// Submit button
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	Spinner lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	WarningMsg lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Meal plan
	ResultBox    lipgloss.Style
	PlanHeading  lipgloss.Style
	PlanWater    lipgloss.Style
	SlotHeading  lipgloss.Style
	FoodName     lipgloss.Style
	FoodCategory lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,
		AccentColor:    p.Accent,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.FieldLabel = lipgloss.NewStyle().
		Foreground(p.Muted).
		Width(18)

	s.FieldLabelFocused = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Width(18)

	s.FieldValue = lipgloss.NewStyle().
		Foreground(p.Text)

	s.FieldValueFocused = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)

	s.FocusMarker = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	s.Button = lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	s.ButtonFocused = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(0, 2)

	s.ButtonDisabled = lipgloss.NewStyle().
		Foreground(p.Muted).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 2)

	s.Spinner = lipgloss.NewStyle().Foreground(p.Warning)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.ResultBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.PlanHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)

	s.PlanWater = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.SlotHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		MarginTop(1)

	s.FoodName = lipgloss.NewStyle().
		Foreground(p.Text)

	s.FoodCategory = lipgloss.NewStyle().
		Foreground(p.Muted)

	return s
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
	syncGlobalStyles()
}

// SetActiveTheme updates the active theme and the package-level styles.
//
// Note: This function is not thread-safe. Call it before the Bubble Tea
// program starts or from its event loop.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	syncGlobalStyles()
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles copies the active theme into the package-level variables.
func syncGlobalStyles() {
	PrimaryColor = activeTheme.PrimaryColor
	SecondaryColor = activeTheme.SecondaryColor
	WarningColor = activeTheme.WarningColor
	ErrorColor = activeTheme.ErrorColor
	MutedColor = activeTheme.MutedColor
	SurfaceColor = activeTheme.SurfaceColor
	TextColor = activeTheme.TextColor
	BorderColor = activeTheme.BorderColor
	AccentColor = activeTheme.AccentColor

	Primary = activeTheme.Primary
	Muted = activeTheme.Muted
	Text = activeTheme.Text

	Title = activeTheme.Title
	Subtitle = activeTheme.Subtitle

	FieldLabel = activeTheme.FieldLabel
	FieldLabelFocused = activeTheme.FieldLabelFocused
	FieldValue = activeTheme.FieldValue
	FieldValueFocused = activeTheme.FieldValueFocused
	FocusMarker = activeTheme.FocusMarker

	Button = activeTheme.Button
	ButtonFocused = activeTheme.ButtonFocused
	ButtonDisabled = activeTheme.ButtonDisabled

	Spinner = activeTheme.Spinner

	ErrorMsg = activeTheme.ErrorMsg
	WarningMsg = activeTheme.WarningMsg

	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey

	ResultBox = activeTheme.ResultBox
	PlanHeading = activeTheme.PlanHeading
	PlanWater = activeTheme.PlanWater
	SlotHeading = activeTheme.SlotHeading
	FoodName = activeTheme.FoodName
	FoodCategory = activeTheme.FoodCategory
}
