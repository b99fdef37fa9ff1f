// Package cmd implements the dietplanner command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/dietplanner/internal/cmd/config"
	appconfig "github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/errors"
)

// ErrReported marks a failure whose message has already been printed.
var ErrReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "dietplanner",
	Short: "Generate a personalised meal plan from your health details",
	Long: `dietplanner collects age, height, weight, gender, dietary habit and
chronic disease, sends them to the meal-plan service and shows the
recommended water intake and the meals for each slot of the day.

Without a subcommand it opens the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForm,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/dietplanner/config.yaml)")
	rootCmd.PersistentFlags().String("backend-url", "", "base URL of the meal-plan service (overrides backend.url)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("backend.url", rootCmd.PersistentFlags().Lookup("backend-url"))

	config.Register(rootCmd)
}

func initConfig() {
	// .env never overrides variables already set in the environment
	_ = godotenv.Load()

	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DIETPLANNER")
	// e.g., DIETPLANNER_BACKEND_URL for backend.url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
