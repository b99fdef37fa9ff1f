package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/dietplanner/internal/mealplan"
)

// PlanHeading is the title of a rendered plan.
const PlanHeading = "Your Personalized Meal Plan"

// Theme supplies the styles used by PlanView.
// styles.Theme implements it for the TUI.
type Theme interface {
	Heading() lipgloss.Style
	Water() lipgloss.Style
	Slot() lipgloss.Style
	Food() lipgloss.Style
	Category() lipgloss.Style
}

// plainTheme renders without any styling.
type plainTheme struct{}

func (plainTheme) Heading() lipgloss.Style  { return lipgloss.NewStyle() }
func (plainTheme) Water() lipgloss.Style    { return lipgloss.NewStyle() }
func (plainTheme) Slot() lipgloss.Style     { return lipgloss.NewStyle() }
func (plainTheme) Food() lipgloss.Style     { return lipgloss.NewStyle() }
func (plainTheme) Category() lipgloss.Style { return lipgloss.NewStyle() }

// PlanView renders a MealPlan.
type PlanView struct {
	theme Theme
}

// NewPlanView creates a PlanView. A nil theme renders plain text.
func NewPlanView(theme Theme) *PlanView {
	if theme == nil {
		theme = plainTheme{}
	}
	return &PlanView{theme: theme}
}

// Render renders plan with the view's theme. A nil plan renders nothing.
func (v *PlanView) Render(plan *mealplan.MealPlan) string {
	return render(plan, v.theme)
}

// RenderPlain renders plan without styling, for non-terminal output.
func (v *PlanView) RenderPlain(plan *mealplan.MealPlan) string {
	return render(plan, plainTheme{})
}

// WaterLine formats the water recommendation with the value verbatim.
func WaterLine(waterML string) string {
	return "Recommended Water Intake: " + waterML + " ml"
}

// FoodLine formats one food entry as "name (category)".
func FoodLine(item mealplan.FoodItem) string {
	return item.Name + " (" + item.Category + ")"
}

func render(plan *mealplan.MealPlan, theme Theme) string {
	if plan == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Heading().Render(PlanHeading))
	b.WriteString("\n")
	b.WriteString(theme.Water().Render(WaterLine(plan.WaterML)))
	b.WriteString("\n")

	for _, slot := range plan.Meals {
		b.WriteString("\n")
		b.WriteString(theme.Slot().Render(slot.Name))
		b.WriteString("\n")
		for _, food := range slot.Foods {
			b.WriteString("  • ")
			b.WriteString(theme.Food().Render(food.Name))
			b.WriteString(" ")
			b.WriteString(theme.Category().Render("(" + food.Category + ")"))
			b.WriteString("\n")
		}
	}
	return b.String()
}
