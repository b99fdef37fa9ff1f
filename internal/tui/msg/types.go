package msg

import (
	"time"

	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/submission"
)

// PlanGeneratedMsg is sent when a plan request completes, successfully
// or not. Exactly one of Plan and Err is set.
type PlanGeneratedMsg struct {
	Ticket submission.Ticket
	Plan   *mealplan.MealPlan
	Err    error
}

// ClearNoticeMsg removes the notice with the matching ID.
type ClearNoticeMsg struct {
	ID int
}

// ThemesLoadedMsg reports the outcome of custom theme discovery.
type ThemesLoadedMsg struct {
	Loaded []string
	Errs   []error
}

// noticeTTL is how long a notice stays visible.
const noticeTTL = 3 * time.Second
