// Package logging provides structured logging for dietplanner.
//
// The terminal UI owns stdout, so diagnostics go to a JSON log file
// instead: {log dir}/dietplanner.log. This is the operator channel. When a
// plan request fails the user only sees a generic message, while the log
// records the failure kind, HTTP status and request ID.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Child loggers carrying a request ID or command name
//   - Size-based rotation with numbered backups and optional gzip
//   - Reading and filtering the log back for the `logs` command
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	reqLogger := logger.WithRequest(ticket.ID)
//	reqLogger.Error("plan request failed", "kind", "http_status", "status", 500)
//
// # Reading logs
//
//	entries, err := logging.ReadLogs(dir)
//	failures := logging.FilterLogs(entries, logging.LogFilter{Level: "warn"})
package logging
