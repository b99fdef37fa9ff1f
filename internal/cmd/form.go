package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/dietplanner/internal/tui"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive meal-plan form",
	Long: `Open the interactive meal-plan form.

Fill in the six fields, press enter to request a plan and scroll the
result with pgup/pgdn. Press esc or ctrl+c to quit.`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runForm(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("the interactive form needs a terminal; use 'dietplanner generate' instead")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, "form")
	defer func() { _ = logger.Close() }()

	if styles.IsValidTheme(cfg.TUI.Theme) {
		styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
	}

	logger.Info("form opened", "backend", cfg.Backend.PlanURL())
	model := tui.NewModel(cmd.Context(), newClient(cfg, logger), tui.Options{
		Theme:  cfg.TUI.Theme,
		Logger: logger,
	})
	err = tui.New(model).Run(cmd.Context())
	logger.Info("form closed")
	return err
}
