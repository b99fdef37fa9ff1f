package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/submission"
	"github.com/Iron-Ham/dietplanner/internal/tui/view"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request a meal plan once and print it",
	Long: `Request a meal plan for the given details and print it.

Unset flags keep the form defaults (46, 170.0 cm, 72.0 kg, Male,
Regular, None).

Examples:
  dietplanner generate --age 30 --gender Female --diet Vegan
  dietplanner generate --disease Diabetes --json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateAge     string
	generateHeight  string
	generateWeight  string
	generateGender  string
	generateDiet    string
	generateDisease string
	generateJSON    bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := mealplan.DefaultForm()
	generateCmd.Flags().StringVar(&generateAge, "age", defaults.Get(mealplan.FieldAge), "age in years")
	generateCmd.Flags().StringVar(&generateHeight, "height", defaults.Get(mealplan.FieldHeightCM), "height in cm")
	generateCmd.Flags().StringVar(&generateWeight, "weight", defaults.Get(mealplan.FieldWeightKG), "weight in kg")
	generateCmd.Flags().StringVar(&generateGender, "gender", defaults.Get(mealplan.FieldGender), "Male or Female")
	generateCmd.Flags().StringVar(&generateDiet, "diet", defaults.Get(mealplan.FieldDietaryHabits), "dietary habit")
	generateCmd.Flags().StringVar(&generateDisease, "disease", defaults.Get(mealplan.FieldChronicDisease), "chronic disease")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print the plan as JSON")
}

// generateForm builds the form from the command flags.
func generateForm() mealplan.FormState {
	return mealplan.DefaultForm().
		Update(mealplan.FieldAge, generateAge).
		Update(mealplan.FieldHeightCM, generateHeight).
		Update(mealplan.FieldWeightKG, generateWeight).
		Update(mealplan.FieldGender, generateGender).
		Update(mealplan.FieldDietaryHabits, generateDiet).
		Update(mealplan.FieldChronicDisease, generateDisease)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, "generate")
	defer func() { _ = logger.Close() }()

	form := generateForm()
	if err := form.Check(); err != nil {
		return err
	}

	controller := submission.NewController(logger)
	if err := controller.Submit(cmd.Context(), newClient(cfg, logger), form); err != nil {
		if errors.IsUserFacing(err) {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), controller.ErrorMessage())
		return ErrReported
	}

	plan := controller.Plan()
	if generateJSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding plan")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), view.NewPlanView(nil).RenderPlain(plan))
	return nil
}
