package cmd

import (
	"github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/logging"
	"github.com/Iron-Ham/dietplanner/internal/planclient"
)

// loadConfig reads and validates the merged configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// newLogger opens the operator log described by cfg. When logging is
// disabled, or the log cannot be opened, a no-op logger is returned so the
// command still runs.
func newLogger(cfg *config.Config, command string) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return logging.NopLogger()
	}
	return logger.WithCommand(command)
}

// newClient builds the plan client for cfg's backend.
func newClient(cfg *config.Config, logger *logging.Logger) *planclient.HTTPClient {
	return planclient.FromConfig(cfg.Backend, logger)
}
