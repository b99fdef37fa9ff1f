package styles

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/errors"
)

// themeFileVersion is the only supported value of a theme file's version key.
const themeFileVersion = "1"

// ThemeFile is a custom theme read from {themes dir}/{name}.yaml.
//
//	name: Forest
//	version: "1"
//	colors:
//	  primary: "#228B22"
//	  ...
type ThemeFile struct {
	Name        string            `yaml:"name"`
	Author      string            `yaml:"author,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Version     string            `yaml:"version"`
	Colors      map[string]string `yaml:"colors"`
}

// colorRole binds a theme file color key to its palette entry. A role with
// a fallback may be omitted and then takes the fallback's color.
type colorRole struct {
	key      string
	fallback string
	slot     func(*ColorPalette) *lipgloss.Color
}

var colorRoles = []colorRole{
	{key: "primary", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Primary }},
	{key: "secondary", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Secondary }},
	{key: "warning", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Warning }},
	{key: "error", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Error }},
	{key: "muted", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Muted }},
	{key: "surface", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Surface }},
	{key: "text", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Text }},
	{key: "border", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Border }},
	{key: "accent", fallback: "warning", slot: func(p *ColorPalette) *lipgloss.Color { return &p.Accent }},
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// LoadThemeFile reads and validates the theme at path.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading theme file")
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrap(err, "parsing theme file")
	}
	if err := theme.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid theme")
	}
	return &theme, nil
}

// Validate reports the first problem with the theme: a missing name or
// version, a missing required color, a malformed color or an unknown key.
func (t *ThemeFile) Validate() error {
	switch {
	case t.Name == "":
		return errors.New("theme name is required")
	case t.Version == "":
		return errors.New("theme version is required")
	case t.Version != themeFileVersion:
		return fmt.Errorf("unsupported theme version: %s (supported: %s)", t.Version, themeFileVersion)
	}

	known := make([]string, 0, len(colorRoles))
	for _, role := range colorRoles {
		known = append(known, role.key)
		color := t.Colors[role.key]
		if color == "" {
			if role.fallback == "" {
				return fmt.Errorf("color '%s' is required", role.key)
			}
			continue
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", role.key, color)
		}
	}

	keys := make([]string, 0, len(t.Colors))
	for key := range t.Colors {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !slices.Contains(known, key) {
			return fmt.Errorf("unknown color '%s' (known: %s)", key, strings.Join(known, ", "))
		}
	}
	return nil
}

// ToPalette converts a validated theme to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	p := &ColorPalette{}
	for _, role := range colorRoles {
		color := t.Colors[role.key]
		if color == "" && role.fallback != "" {
			color = t.Colors[role.fallback]
		}
		*role.slot(p) = lipgloss.Color(color)
	}
	return p
}

// customThemes holds the themes found by the last discovery.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme makes theme selectable as name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns the custom theme registered as name, or nil.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the registered custom theme names, sorted.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes empties the registry.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// IsBuiltinTheme reports whether name is one of the bundled themes.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme reports whether name is a registered custom theme.
func IsCustomTheme(name string) bool {
	_, ok := customThemes[ThemeName(name)]
	return ok
}

var themesDirFn = config.ThemesDir

// ThemesDir returns the directory searched for custom themes.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc replaces the themes directory lookup and returns the
// previous one.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// themeNameFromFile returns the theme name for a directory entry, or false
// if the entry is not a theme file.
func themeNameFromFile(entry fs.DirEntry) (string, bool) {
	if entry.IsDir() {
		return "", false
	}
	ext := filepath.Ext(entry.Name())
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	return strings.TrimSuffix(entry.Name(), ext), true
}

// DiscoverCustomThemes registers every valid theme file in ThemesDir and
// returns the loaded names. A missing directory is not an error. Files that
// fail to load, or that reuse a built-in name, are reported and skipped.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{errors.Wrap(err, "reading themes directory")}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		name, ok := themeNameFromFile(entry)
		if !ok {
			continue
		}
		if IsBuiltinTheme(name) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", entry.Name(), name))
			continue
		}
		theme, err := LoadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		RegisterCustomTheme(ThemeName(name), theme)
		loaded = append(loaded, name)
	}
	return loaded, errs
}
