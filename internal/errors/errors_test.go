package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

// -----------------------------------------------------------------------------
// Kind Tests
// -----------------------------------------------------------------------------

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindNetwork, "network"},
		{KindHTTPStatus, "http_status"},
		{KindParse, "parse"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// PlanError Tests
// -----------------------------------------------------------------------------

func TestPlanError_Constructors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name       string
		err        *PlanError
		wantKind   Kind
		wantStatus int
		wantText   []string
	}{
		{
			name:     "network",
			err:      NewNetworkError(cause),
			wantKind: KindNetwork,
			wantText: []string{"kind=network", "connection refused"},
		},
		{
			name:       "status",
			err:        NewStatusError(500, "internal error\n"),
			wantKind:   KindHTTPStatus,
			wantStatus: 500,
			wantText:   []string{"kind=http_status", "status=500", "internal error"},
		},
		{
			name:     "parse",
			err:      NewParseError(errors.New("missing mealPlan")),
			wantKind: KindParse,
			wantText: []string{"kind=parse", "missing mealPlan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.wantKind)
			}
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			msg := tt.err.Error()
			for _, want := range tt.wantText {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestPlanError_Is(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewStatusError(502, ""))

	if !Is(wrapped, ErrRequestFailed) {
		t.Error("expected PlanError to match ErrRequestFailed")
	}
	if !Is(wrapped, &PlanError{Kind: KindHTTPStatus}) {
		t.Error("expected match against same kind")
	}
	if Is(wrapped, &PlanError{Kind: KindNetwork}) {
		t.Error("expected no match against different kind")
	}
	if !Is(wrapped, &PlanError{}) {
		t.Error("expected zero-kind target to match any PlanError")
	}
}

func TestPlanError_UnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewNetworkError(cause)
	if !Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestPlanError_TruncatesBody(t *testing.T) {
	err := NewStatusError(500, strings.Repeat("x", 2000))
	if len(err.Body) > 515 {
		t.Errorf("Body length = %d, want truncated", len(err.Body))
	}
	if !strings.HasSuffix(err.Body, "...") {
		t.Errorf("truncated body should end with ellipsis")
	}
}

func TestPlanError_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" is two bytes; the leading "x" puts a continuation byte at the cut.
	err := NewStatusError(502, "x"+strings.Repeat("é", 1000))
	body := strings.TrimSuffix(err.Body, "...")
	if !utf8.ValidString(body) {
		t.Errorf("truncated body is not valid UTF-8: %q", body[len(body)-4:])
	}
	if len(body) != 511 {
		t.Errorf("truncated body length = %d, want 511", len(body))
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	err := NewValidationError("must be a number").WithField("Age").WithValue("abc")

	want := `validation error [field=Age, value="abc"]: must be a number`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Message() != "must be a number" {
		t.Errorf("Message() = %q", err.Message())
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("expected ValidationError to match ErrInvalidInput")
	}
	if Is(err, ErrRequestFailed) {
		t.Error("ValidationError should not match ErrRequestFailed")
	}
}

func TestValidationError_NoContext(t *testing.T) {
	err := NewValidationError("bad")
	if err.Error() != "validation error: bad" {
		t.Errorf("Error() = %q", err.Error())
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"network", NewNetworkError(errors.New("x")), KindNetwork},
		{"wrapped status", Wrap(NewStatusError(404, ""), "ctx"), KindHTTPStatus},
		{"parse", NewParseError(errors.New("x")), KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusCodeOf(t *testing.T) {
	if got := StatusCodeOf(NewStatusError(503, "")); got != 503 {
		t.Errorf("StatusCodeOf() = %d, want 503", got)
	}
	if got := StatusCodeOf(errors.New("x")); got != 0 {
		t.Errorf("StatusCodeOf() = %d, want 0", got)
	}
}

func TestUserMessage_CollapsesAllCauses(t *testing.T) {
	errs := []error{
		NewNetworkError(errors.New("connection refused")),
		NewStatusError(500, "stack trace"),
		NewParseError(errors.New("unexpected EOF")),
		errors.New("anything else"),
	}

	for _, err := range errs {
		if got := UserMessage(err); got != GenericPlanFailure {
			t.Errorf("UserMessage(%v) = %q, want generic message", err, got)
		}
	}
	if got := UserMessage(nil); got != "" {
		t.Errorf("UserMessage(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("nil should not be user facing")
	}
	if IsUserFacing(NewNetworkError(errors.New("x"))) {
		t.Error("request failures should not be user facing")
	}
	if !IsUserFacing(NewValidationError("required").WithField("Age")) {
		t.Error("validation errors should be user facing")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	base := New("base")
	err := Wrap(base, "context")
	if err.Error() != "context: base" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !Is(err, base) {
		t.Error("wrapped error should match base")
	}
}
