// Package submission tracks the lifecycle of a meal-plan request: the
// loading flag, the stored plan and the user-facing error message.
package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/logging"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
	"github.com/Iron-Ham/dietplanner/internal/planclient"
)

// State is the phase of the controller.
type State int

const (
	// StateIdle means nothing has been submitted yet.
	StateIdle State = iota
	// StateLoading means a request is in flight.
	StateLoading
	// StateSuccess means the last request produced a plan.
	StateSuccess
	// StateError means the last request failed.
	StateError
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Ticket identifies one accepted submission. Form is the snapshot taken
// when the submission began; later edits to the live form do not reach it.
type Ticket struct {
	ID      string
	Form    mealplan.FormState
	Started time.Time
	seq     uint64
}

// Context returns ctx annotated with the ticket's request ID.
func (t Ticket) Context(ctx context.Context) context.Context {
	return planclient.WithRequestID(ctx, t.ID)
}

// Controller owns the submission state. It is not safe for concurrent
// use; the UI event loop is its only caller.
type Controller struct {
	state    State
	plan     *mealplan.MealPlan
	errMsg   string
	seq      uint64
	disposed bool
	logger   *logging.Logger
	now      func() time.Time
	newID    func() string
}

// NewController creates an idle controller. A nil logger discards output.
func NewController(logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Controller{
		state:  StateIdle,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Begin starts a submission of form. It returns false and changes nothing
// while a request is already loading or after Dispose.
func (c *Controller) Begin(form mealplan.FormState) (Ticket, bool) {
	if c.disposed || c.state == StateLoading {
		return Ticket{}, false
	}

	c.seq++
	c.state = StateLoading
	c.plan = nil
	c.errMsg = ""

	ticket := Ticket{
		ID:      c.newID(),
		Form:    form,
		Started: c.now(),
		seq:     c.seq,
	}
	c.logger.WithRequest(ticket.ID).Info("plan request started", "form", form.Map())
	return ticket, true
}

// Finish applies the outcome of ticket's request and ends loading. It
// returns false, leaving state untouched, if ticket is not the current
// submission or the controller has been disposed.
func (c *Controller) Finish(ticket Ticket, plan *mealplan.MealPlan, err error) bool {
	if c.disposed || c.state != StateLoading || ticket.seq != c.seq {
		c.logger.WithRequest(ticket.ID).Debug("dropping stale plan completion", "disposed", c.disposed)
		return false
	}

	logger := c.logger.WithRequest(ticket.ID)
	elapsed := c.now().Sub(ticket.Started).Milliseconds()

	if err == nil && plan == nil {
		err = errors.NewParseError(fmt.Errorf("service returned no plan"))
	}
	if err != nil {
		c.state = StateError
		c.plan = nil
		c.errMsg = errors.UserMessage(err)
		logger.Error("plan request failed",
			"kind", errors.KindOf(err).String(),
			"status", errors.StatusCodeOf(err),
			"error", err.Error(),
			"duration_ms", elapsed,
		)
		return true
	}

	c.state = StateSuccess
	c.plan = plan
	c.errMsg = ""
	logger.Info("plan request succeeded",
		"slots", len(plan.Meals),
		"water_ml", plan.WaterML,
		"duration_ms", elapsed,
	)
	return true
}

// Submit runs one submission synchronously: it applies the form's input
// constraints, begins, calls client and finishes. The returned error is
// the unclassified cause; callers display ErrorMessage instead.
func (c *Controller) Submit(ctx context.Context, client planclient.Client, form mealplan.FormState) error {
	if err := form.Check(); err != nil {
		return err
	}

	ticket, ok := c.Begin(form)
	if !ok {
		if c.disposed {
			return errors.ErrDisposed
		}
		return errors.ErrSubmissionInFlight
	}

	plan, err := client.GeneratePlan(ticket.Context(ctx), ticket.Form)
	c.Finish(ticket, plan, err)
	if err == nil && plan == nil {
		return errors.NewParseError(fmt.Errorf("service returned no plan"))
	}
	return err
}

// Dispose marks the controller torn down. Completions arriving afterwards
// are ignored.
func (c *Controller) Dispose() {
	c.disposed = true
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool {
	return c.disposed
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Loading reports whether a request is in flight.
func (c *Controller) Loading() bool {
	return c.state == StateLoading
}

// Plan returns the plan of the last successful request, or nil.
func (c *Controller) Plan() *mealplan.MealPlan {
	return c.plan
}

// ErrorMessage returns the user-facing message of the last failure, or "".
func (c *Controller) ErrorMessage() string {
	return c.errMsg
}
