package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect color themes for the form",
	Long: `Inspect the color themes available to the dietplanner form.

Built-in themes ship with dietplanner. Custom themes are YAML files in the
themes directory (see 'theme path'); each needs a name, version "1" and
the colors primary, secondary, warning, error, muted, surface, text and
border, plus an optional accent.

Select a theme with 'dietplanner config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom themes",
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show the colors of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the custom themes directory",
	RunE:  runThemePath,
}

func init() {
	themeCmd.AddCommand(themeListCmd, themeInfoCmd, themePathCmd)
	configCmd.AddCommand(themeCmd)
}

// reportThemeErrors prints theme files that failed to load.
func reportThemeErrors(w io.Writer, errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w, "Warning: some custom themes were skipped:")
	for _, err := range errs {
		fmt.Fprintf(w, "  - %v\n", err)
	}
	fmt.Fprintln(w)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	_, errs := styles.DiscoverCustomThemes()
	reportThemeErrors(cmd.ErrOrStderr(), errs)

	active := viper.GetString("tui.theme")
	mark := func(name string) string {
		if name == active {
			return " (active)"
		}
		return ""
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s%s\n", name, mark(name))
	}

	if custom := styles.CustomThemeNames(); len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range custom {
			line := name
			if theme := styles.GetCustomTheme(styles.ThemeName(name)); theme != nil && theme.Author != "" {
				line += " by " + theme.Author
			}
			fmt.Fprintf(out, "  - %s%s\n", line, mark(name))
		}
	}
	return nil
}

// resolveTheme discovers custom themes and checks that name can be used.
// A theme file that exists but failed to load is reported with its cause.
func resolveTheme(name string) error {
	_, errs := styles.DiscoverCustomThemes()
	if styles.IsValidTheme(name) {
		return nil
	}
	for _, err := range errs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return fmt.Errorf("theme '%s' failed to load: %v", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s (run 'dietplanner config theme list')", name)
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := resolveTheme(name); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	custom := styles.GetCustomTheme(styles.ThemeName(name))
	if custom != nil {
		fmt.Fprintf(out, "Theme: %s (custom)\n", name)
		if custom.Description != "" {
			fmt.Fprintln(out, custom.Description)
		}
	} else {
		fmt.Fprintf(out, "Theme: %s (built-in)\n", name)
	}
	fmt.Fprintln(out)

	p := styles.GetPalette(styles.ThemeName(name))
	rows := []struct {
		label string
		color string
	}{
		{"Headings, focused field", string(p.Primary)},
		{"Button, water intake", string(p.Secondary)},
		{"Loading, notices", string(p.Warning)},
		{"Errors", string(p.Error)},
		{"Labels, categories", string(p.Muted)},
		{"Surface", string(p.Surface)},
		{"Text", string(p.Text)},
		{"Result border", string(p.Border)},
		{"Meal headings", string(p.Accent)},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "  %-24s %s\n", row.label, row.color)
	}
	return nil
}

func runThemePath(cmd *cobra.Command, args []string) error {
	dir := styles.ThemesDir()
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "(directory does not exist yet)")
	}
	return nil
}
