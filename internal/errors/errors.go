// Package errors provides centralized error definitions and error handling utilities
// for the dietplanner codebase. It defines sentinel errors, the tagged error type
// used for failed plan requests, validation errors for form constraints, and
// classification helpers.
//
// # Error Types
//
// PlanError represents a failed call to the meal-plan service. It carries a
// Kind describing what went wrong:
//   - KindNetwork: the request could not be built or sent
//   - KindHTTPStatus: the service answered with a non-2xx status
//   - KindParse: the response body could not be read or decoded
//
// ValidationError represents a form or configuration value that violates an
// input constraint.
//
// # User-facing messages
//
// Plan request failures are never shown to the user as-is. Whatever the
// Kind, UserMessage returns the same generic text. The underlying cause is
// meant for the operator log only:
//
//	if err != nil {
//	    logger.Error("plan request failed", "kind", errors.KindOf(err).String(), "error", err.Error())
//	    showToUser(errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// GenericPlanFailure is the only failure text shown to end users.
const GenericPlanFailure = "Failed to generate meal plan. Please check the backend server."

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrRequestFailed matches every PlanError regardless of kind.
	ErrRequestFailed = New("meal plan request failed")
	// ErrInvalidInput indicates that a field or setting holds an unacceptable value.
	ErrInvalidInput = New("invalid input")
	// ErrSubmissionInFlight indicates a submission was attempted while one is pending.
	ErrSubmissionInFlight = New("a submission is already in progress")
	// ErrDisposed indicates the owning component has been torn down.
	ErrDisposed = New("component disposed")
)

// -----------------------------------------------------------------------------
// Plan request errors
// -----------------------------------------------------------------------------

// Kind tags the cause of a failed plan request.
type Kind int

const (
	// KindUnknown is reported for errors that are not PlanErrors.
	KindUnknown Kind = iota
	// KindNetwork covers request construction and transport failures.
	KindNetwork
	// KindHTTPStatus covers non-2xx responses.
	KindHTTPStatus
	// KindParse covers unreadable or malformed response bodies.
	KindParse
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// PlanError describes a failed call to the meal-plan service.
//
// Example:
//
//	err := errors.NewStatusError(500, body)
//	fmt.Println(err) // "meal plan request failed [kind=http_status, status=500]: ..."
type PlanError struct {
	Kind       Kind
	StatusCode int
	// Body holds a truncated copy of the response body for diagnostics.
	Body  string
	cause error
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(cause error) *PlanError {
	return &PlanError{Kind: KindNetwork, cause: cause}
}

// NewStatusError records a non-2xx response.
func NewStatusError(status int, body string) *PlanError {
	return &PlanError{Kind: KindHTTPStatus, StatusCode: status, Body: truncate(body, 512)}
}

// NewParseError wraps a decoding failure.
func NewParseError(cause error) *PlanError {
	return &PlanError{Kind: KindParse, cause: cause}
}

// Error returns the formatted error message.
func (e *PlanError) Error() string {
	parts := []string{"kind=" + e.Kind.String()}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	msg := fmt.Sprintf("%s [%s]", ErrRequestFailed.Error(), strings.Join(parts, ", "))
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *PlanError) Is(target error) bool {
	if target == ErrRequestFailed {
		return true
	}
	if t, ok := target.(*PlanError); ok {
		return t.Kind == KindUnknown || t.Kind == e.Kind
	}
	return false
}

// -----------------------------------------------------------------------------
// Validation errors
// -----------------------------------------------------------------------------

// ValidationError represents a value that violates an input constraint.
//
// Example:
//
//	err := errors.NewValidationError("must be a number").WithField("Age").WithValue("abc")
type ValidationError struct {
	Field   string
	Value   any
	message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Message returns the bare constraint message without field context.
func (e *ValidationError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%q", fmt.Sprint(e.Value)))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return target == ErrInvalidInput
}

// -----------------------------------------------------------------------------
// Classification helpers
// -----------------------------------------------------------------------------

// KindOf returns the Kind of a PlanError anywhere in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var planErr *PlanError
	if As(err, &planErr) {
		return planErr.Kind
	}
	return KindUnknown
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var planErr *PlanError
	if As(err, &planErr) {
		return planErr.StatusCode
	}
	return 0
}

// UserMessage returns the text to show an end user for err.
// Every failure collapses to GenericPlanFailure; nil yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return GenericPlanFailure
}

// IsUserFacing returns true if err's own message is safe to show users.
// Only constraint violations qualify; request failures never do.
func IsUserFacing(err error) bool {
	var validation *ValidationError
	return err != nil && As(err, &validation)
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// truncate limits s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
