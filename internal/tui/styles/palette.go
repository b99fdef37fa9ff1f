package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/dietplanner/internal/config"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Green/amber dark theme
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
	ThemeCatppuccin     ThemeName = "catppuccin"      // Catppuccin Mocha pastel theme
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light variant
)

func init() {
	config.ThemeChecker = IsValidTheme
	config.ThemeLister = ValidThemes
}

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
		string(ThemeCatppuccin),
		string(ThemeSolarizedLight),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent (headings, focused field)
	Primary lipgloss.Color
	// Secondary accent (submit button, water intake)
	Secondary lipgloss.Color
	// Warning color (loading state)
	Warning lipgloss.Color
	// Error color (failed submission)
	Error lipgloss.Color
	// Muted color (labels, help text, food categories)
	Muted lipgloss.Color
	// Surface color (button background when disabled)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (result box)
	Border lipgloss.Color
	// Accent is used for meal slot headings.
	Accent lipgloss.Color
}

// DefaultPalette returns the default dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#34D399"), // Emerald-400
		Secondary: lipgloss.Color("#60A5FA"), // Blue-400
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red-400
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
		Accent:    lipgloss.Color("#FBBF24"), // Yellow
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection
		Accent:    lipgloss.Color("#FFB86C"), // Dracula orange
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1
		Accent:    lipgloss.Color("#D08770"), // Nord aurora orange
	}
}

// GruvboxPalette returns the Gruvbox theme palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#83A598"), // Gruvbox aqua
		Secondary: lipgloss.Color("#B8BB26"), // Gruvbox green
		Warning:   lipgloss.Color("#FABD2F"), // Gruvbox yellow
		Error:     lipgloss.Color("#FB4934"), // Gruvbox red
		Muted:     lipgloss.Color("#928374"), // Gruvbox gray
		Surface:   lipgloss.Color("#282828"), // Gruvbox bg0
		Text:      lipgloss.Color("#EBDBB2"), // Gruvbox fg
		Border:    lipgloss.Color("#3C3836"), // Gruvbox bg1
		Accent:    lipgloss.Color("#FE8019"), // Gruvbox orange
	}
}

// CatppuccinPalette returns the Catppuccin Mocha palette.
func CatppuccinPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#89B4FA"), // Catppuccin blue
		Secondary: lipgloss.Color("#A6E3A1"), // Catppuccin green
		Warning:   lipgloss.Color("#F9E2AF"), // Catppuccin yellow
		Error:     lipgloss.Color("#F38BA8"), // Catppuccin red
		Muted:     lipgloss.Color("#6C7086"), // Catppuccin overlay0
		Surface:   lipgloss.Color("#1E1E2E"), // Catppuccin base
		Text:      lipgloss.Color("#CDD6F4"), // Catppuccin text
		Border:    lipgloss.Color("#313244"), // Catppuccin surface0
		Accent:    lipgloss.Color("#FAB387"), // Catppuccin peach
	}
}

// SolarizedLightPalette returns the Solarized Light palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Warning:   lipgloss.Color("#B58900"), // Solarized yellow
		Error:     lipgloss.Color("#DC322F"), // Solarized red
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#FDF6E3"), // Base3 background
		Text:      lipgloss.Color("#657B83"), // Base00 text
		Border:    lipgloss.Color("#EEE8D5"), // Base2
		Accent:    lipgloss.Color("#CB4B16"), // Solarized orange
	}
}

// GetPalette returns the color palette for the given theme name.
// Custom themes take precedence; unknown names get the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeCatppuccin:
		return CatppuccinPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	default:
		return DefaultPalette()
	}
}
