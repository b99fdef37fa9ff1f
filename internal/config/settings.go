package config

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// SettingKind is the type of value a setting accepts.
type SettingKind int

// Setting kinds.
const (
	KindString SettingKind = iota
	KindURL
	KindDuration
	KindBool
	KindInt
	KindTheme
	KindLevel
)

// Setting describes one user-settable configuration key.
type Setting struct {
	Key         string
	Section     string
	Label       string
	Description string
	Kind        SettingKind
}

// ThemeLister returns the selectable theme names. Like ThemeChecker it is
// set by the styles package; nil lists only the default theme.
var ThemeLister func() []string

var settings = []Setting{
	{"backend.url", "Backend", "Service URL", "Base URL of the meal-plan service; plans are requested from {url}/generate-plan", KindURL},
	{"backend.timeout", "Backend", "Request Timeout", "Maximum wait for a plan, e.g. 30s (0s waits indefinitely)", KindDuration},
	{"tui.theme", "Appearance", "Theme", "Color theme for the form and the plan", KindTheme},
	{"logging.enabled", "Logging", "Enabled", "Write the JSON operator log of plan requests", KindBool},
	{"logging.level", "Logging", "Level", "Minimum level written to the log", KindLevel},
	{"logging.dir", "Logging", "Directory", "Directory holding dietplanner.log (empty = config directory)", KindString},
	{"logging.max_size_mb", "Logging", "Max Size (MB)", "Rotate the log file once it reaches this size", KindInt},
	{"logging.max_backups", "Logging", "Max Backups", "Number of rotated log files to keep", KindInt},
	{"logging.compress", "Logging", "Compress Backups", "Gzip rotated log files", KindBool},
}

// Settings returns every settable key in display order.
func Settings() []Setting {
	return slices.Clone(settings)
}

// LookupSetting returns the setting for key.
func LookupSetting(key string) (Setting, bool) {
	i := slices.IndexFunc(settings, func(s Setting) bool { return s.Key == key })
	if i < 0 {
		return Setting{}, false
	}
	return settings[i], true
}

// Options returns the allowed values of a theme or level setting, and nil
// for free-form kinds.
func (s Setting) Options() []string {
	switch s.Kind {
	case KindTheme:
		if ThemeLister == nil {
			return []string{Default().TUI.Theme}
		}
		return ThemeLister()
	case KindLevel:
		return ValidLogLevels()
	default:
		return nil
	}
}

// Parse validates raw for the setting and returns the value to store:
// durations as their canonical string, bools and ints typed, URLs without
// a trailing slash, levels lowercased.
func (s Setting) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch s.Kind {
	case KindURL:
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid value for %s: expected an http or https URL", s.Key)
		}
		return strings.TrimRight(raw, "/"), nil
	case KindDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration such as 30s", s.Key)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", s.Key)
		}
		return d.String(), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", s.Key)
		}
		return b, nil
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", s.Key)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", s.Key)
		}
		return n, nil
	case KindTheme:
		if ThemeChecker != nil && !ThemeChecker(raw) {
			return nil, fmt.Errorf("invalid theme: %s (valid: %s)", raw, strings.Join(s.Options(), ", "))
		}
		return raw, nil
	case KindLevel:
		level := strings.ToLower(raw)
		if !slices.Contains(ValidLogLevels(), level) {
			return nil, fmt.Errorf("invalid value for %s: %s (valid: %s)", s.Key, raw, strings.Join(ValidLogLevels(), ", "))
		}
		return level, nil
	default:
		return raw, nil
	}
}

// ParseSetting looks up key and parses raw for it.
func ParseSetting(key, raw string) (any, error) {
	s, ok := LookupSetting(key)
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s (run 'dietplanner config set --help')", key)
	}
	return s.Parse(raw)
}
