package config

import (
	"slices"
	"testing"
)

func TestSettings_MatchDefaults(t *testing.T) {
	defaults := DefaultValues()
	if len(Settings()) != len(defaults) {
		t.Errorf("got %d settings, want one per default (%d)", len(Settings()), len(defaults))
	}
	for _, s := range Settings() {
		if _, ok := defaults[s.Key]; !ok {
			t.Errorf("setting %s has no default", s.Key)
		}
		if s.Label == "" || s.Section == "" {
			t.Errorf("setting %s is missing a label or section", s.Key)
		}
	}
}

func TestParseSetting(t *testing.T) {
	prevChecker, prevLister := ThemeChecker, ThemeLister
	t.Cleanup(func() { ThemeChecker, ThemeLister = prevChecker, prevLister })
	ThemeChecker = func(name string) bool { return name == "default" || name == "nord" }
	ThemeLister = func() []string { return []string{"default", "nord"} }

	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"backend.url", "http://localhost:5000/", "http://localhost:5000", false},
		{"backend.url", " https://plans.example.com ", "https://plans.example.com", false},
		{"backend.url", "localhost:5000", nil, true},
		{"backend.url", "ftp://plans.local", nil, true},
		{"backend.timeout", "90s", "1m30s", false},
		{"backend.timeout", "-5s", nil, true},
		{"backend.timeout", "soon", nil, true},
		{"tui.theme", "nord", "nord", false},
		{"tui.theme", "neon", nil, true},
		{"logging.level", "WARN", "warn", false},
		{"logging.level", "trace", nil, true},
		{"logging.enabled", "false", false, false},
		{"logging.enabled", "no", nil, true},
		{"logging.max_size_mb", "25", 25, false},
		{"logging.max_size_mb", "-1", nil, true},
		{"logging.max_size_mb", "big", nil, true},
		{"logging.dir", "~/logs", "~/logs", false},
		{"backend.retries", "3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := ParseSetting(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSetting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSetting() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestSettingOptions(t *testing.T) {
	prev := ThemeLister
	t.Cleanup(func() { ThemeLister = prev })

	ThemeLister = nil
	theme, _ := LookupSetting("tui.theme")
	if got := theme.Options(); !slices.Equal(got, []string{"default"}) {
		t.Errorf("theme options without lister = %v", got)
	}

	ThemeLister = func() []string { return []string{"default", "forest"} }
	if got := theme.Options(); !slices.Equal(got, []string{"default", "forest"}) {
		t.Errorf("theme options = %v", got)
	}

	level, _ := LookupSetting("logging.level")
	if got := level.Options(); !slices.Equal(got, ValidLogLevels()) {
		t.Errorf("level options = %v", got)
	}

	url, _ := LookupSetting("backend.url")
	if url.Options() != nil {
		t.Error("free-form settings should have no options")
	}
}
