package cmd

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the operator log",
	Long: `View and filter the dietplanner operator log.

Every plan request is logged with a request ID that is also sent to the
meal-plan service in the X-Request-ID header.

Examples:
  # Show the last 50 entries
  dietplanner logs

  # Show failures from the last hour
  dietplanner logs --level warn --since 1h

  # Follow one request
  dietplanner logs --request 3f1c2a9e-...`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail    int
	logsLevel   string
	logsSince   string
	logsRequest string
	logsGrep    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsRequest, "request", "", "Show entries of one request ID")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Show entries whose message contains this text")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	dir := cfg.Logging.ResolveDir()

	filter := logging.LogFilter{
		Level:           logsLevel,
		RequestID:       logsRequest,
		MessageContains: logsGrep,
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		filter.Since = time.Now().Add(-d)
	}

	entries, err := logging.ReadLogs(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "No logs found. Logs are stored at: %s\n", dir)
			return nil
		}
		return err
	}

	entries = logging.FilterLogs(entries, filter)
	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(out, logging.FormatEntry(e))
	}
	return nil
}
