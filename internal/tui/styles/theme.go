package styles

import "github.com/charmbracelet/lipgloss"

// Theme implements view.Theme by wrapping the active styles.
//
// The interface is defined in internal/tui/view to avoid circular imports
// between styles and view packages.
type Theme struct{}

// NewTheme creates a new Theme instance.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) Heading() lipgloss.Style  { return PlanHeading }
func (t *Theme) Water() lipgloss.Style    { return PlanWater }
func (t *Theme) Slot() lipgloss.Style     { return SlotHeading }
func (t *Theme) Food() lipgloss.Style     { return FoodName }
func (t *Theme) Category() lipgloss.Style { return FoodCategory }
