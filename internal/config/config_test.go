package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Backend.URL != "http://127.0.0.1:5000" {
		t.Errorf("Backend.URL = %q, want %q", cfg.Backend.URL, "http://127.0.0.1:5000")
	}
	if cfg.Backend.Timeout != 0 {
		t.Errorf("Backend.Timeout = %v, want 0 (disabled)", cfg.Backend.Timeout)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want default", cfg.TUI.Theme)
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() config has validation errors: %v", ValidationErrors(errs))
	}
}

func TestBackendConfig_PlanURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://127.0.0.1:5000", "http://127.0.0.1:5000/generate-plan"},
		{"http://127.0.0.1:5000/", "http://127.0.0.1:5000/generate-plan"},
		{"https://plans.example.com/api", "https://plans.example.com/api/generate-plan"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			b := BackendConfig{URL: tt.url}
			if got := b.PlanURL(); got != tt.want {
				t.Errorf("PlanURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := ConfigDir(); got != "/custom/config/dietplanner" {
			t.Errorf("ConfigDir() = %q, want %q", got, "/custom/config/dietplanner")
		}
		if got := ConfigFile(); got != "/custom/config/dietplanner/config.yaml" {
			t.Errorf("ConfigFile() = %q", got)
		}
		if got := ThemesDir(); got != "/custom/config/dietplanner/themes" {
			t.Errorf("ThemesDir() = %q", got)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		want := filepath.Join(home, ".config", "dietplanner")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestLoggingConfig_ResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	l := LoggingConfig{}
	if got := l.ResolveDir(); got != "/xdg/dietplanner" {
		t.Errorf("ResolveDir() empty = %q", got)
	}

	l.Dir = "/var/log/dietplanner"
	if got := l.ResolveDir(); got != "/var/log/dietplanner" {
		t.Errorf("ResolveDir() absolute = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	l.Dir = "~/logs"
	if got := l.ResolveDir(); got != filepath.Join(home, "logs") {
		t.Errorf("ResolveDir() tilde = %q", got)
	}
}

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("backend.url", "http://plans.local:8080")
	viper.Set("backend.timeout", "15s")
	viper.Set("logging.level", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend.URL != "http://plans.local:8080" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("Backend.Timeout = %v, want 15s", cfg.Backend.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want default 3", cfg.Logging.MaxBackups)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("backend.url", "not a url")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail for invalid backend.url")
	}

	// Get falls back to defaults
	if cfg := Get(); cfg.Backend.URL != Default().Backend.URL {
		t.Errorf("Get() Backend.URL = %q, want default", cfg.Backend.URL)
	}
}

func TestDefaultValues_CoverDefaults(t *testing.T) {
	values := DefaultValues()
	for _, key := range []string{"backend.url", "backend.timeout", "tui.theme", "logging.level"} {
		if _, ok := values[key]; !ok {
			t.Errorf("DefaultValues() missing %s", key)
		}
	}
	if values["backend.timeout"] != "0s" {
		t.Errorf("backend.timeout default = %v, want 0s", values["backend.timeout"])
	}
}

func TestValidationErrors_Error(t *testing.T) {
	single := ValidationErrors{{Field: "backend.url", Value: "", Message: "cannot be empty"}}
	if got := single.Error(); got != "backend.url: cannot be empty (got: )" {
		t.Errorf("single Error() = %q", got)
	}

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	got := multi.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("multi Error() = %q", got)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render empty string")
	}
}
