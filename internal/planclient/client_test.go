package planclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
)

const sampleBody = `{"targets":{"Recommended_Water_ml":2500},"mealPlan":{"Breakfast":[{"food_item":"Oats","category":"Grain"}],"Lunch":[]}}`

// newBackend starts a fake meal-plan service that serves handler on
// POST /generate-plan only.
func newBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc(config.GeneratePlanPath, handler).Methods(http.MethodPost)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	c := NewHTTPClient("")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.URL() != "http://127.0.0.1:5000/generate-plan" {
		t.Errorf("URL() = %q", c.URL())
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("default timeout = %v, want 0 (disabled)", c.httpClient.Timeout)
	}
}

func TestNewHTTPClient_WithOptions(t *testing.T) {
	transport := &http.Transport{}
	custom := &http.Client{Transport: transport}
	c := NewHTTPClient("http://plans.local/", WithHTTPClient(custom), WithTimeout(5*time.Second), WithLogger(nil))
	if c.httpClient.Transport != transport {
		t.Error("WithHTTPClient() was not applied")
	}
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", c.httpClient.Timeout)
	}
	if custom.Timeout != 0 {
		t.Errorf("caller's client timeout = %v, want it left unchanged", custom.Timeout)
	}
	if c.logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}
	if c.URL() != "http://plans.local/generate-plan" {
		t.Errorf("URL() = %q", c.URL())
	}
}

func TestFromConfig(t *testing.T) {
	c := FromConfig(config.BackendConfig{URL: "http://svc:9000", Timeout: 2 * time.Second}, nil)
	if c.URL() != "http://svc:9000/generate-plan" {
		t.Errorf("URL() = %q", c.URL())
	}
	if c.httpClient.Timeout != 2*time.Second {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
}

func TestGeneratePlan_Success(t *testing.T) {
	var gotPayload map[string]string
	var gotRaw string
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Accept = %q", accept)
		}
		if id := r.Header.Get(RequestIDHeader); id != "req-42" {
			t.Errorf("%s = %q, want req-42", RequestIDHeader, id)
		}
		raw, _ := io.ReadAll(r.Body)
		gotRaw = string(raw)
		if err := json.Unmarshal(raw, &gotPayload); err != nil {
			t.Errorf("payload is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleBody)
	})

	ctx := WithRequestID(context.Background(), "req-42")
	plan, err := NewHTTPClient(server.URL).GeneratePlan(ctx, mealplan.DefaultForm())
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}

	want := map[string]string{
		"Age":             "46",
		"Height_cm":       "170.0",
		"Weight_kg":       "72.0",
		"Gender":          "Male",
		"Dietary_Habits":  "Regular",
		"Chronic_Disease": "None",
	}
	if len(gotPayload) != len(want) {
		t.Errorf("payload has %d keys, want %d: %s", len(gotPayload), len(want), gotRaw)
	}
	for k, v := range want {
		if gotPayload[k] != v {
			t.Errorf("payload[%s] = %q, want %q", k, gotPayload[k], v)
		}
	}
	if !strings.HasPrefix(gotRaw, `{"Age":"46"`) {
		t.Errorf("payload should start with Age: %s", gotRaw)
	}

	if plan.WaterML != "2500" {
		t.Errorf("WaterML = %q, want 2500", plan.WaterML)
	}
	if got := plan.SlotNames(); len(got) != 2 || got[0] != "Breakfast" || got[1] != "Lunch" {
		t.Errorf("SlotNames() = %v", got)
	}
}

func TestGeneratePlan_NoRequestIDHeaderWithoutContext(t *testing.T) {
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header[RequestIDHeader]; ok {
			t.Errorf("unexpected %s header", RequestIDHeader)
		}
		_, _ = io.WriteString(w, sampleBody)
	})

	if _, err := NewHTTPClient(server.URL).GeneratePlan(context.Background(), mealplan.DefaultForm()); err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
}

func TestGeneratePlan_AnySuccessStatus(t *testing.T) {
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, sampleBody)
	})

	if _, err := NewHTTPClient(server.URL).GeneratePlan(context.Background(), mealplan.DefaultForm()); err != nil {
		t.Fatalf("GeneratePlan() with 201 error = %v", err)
	}
}

func TestGeneratePlan_Failures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantKind   errors.Kind
		wantStatus int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantKind:   errors.KindHTTPStatus,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, sampleBody)
			},
			wantKind:   errors.KindHTTPStatus,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"targets":`)
			},
			wantKind: errors.KindParse,
		},
		{
			name: "missing meal plan",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"targets":{"Recommended_Water_ml":2000}}`)
			},
			wantKind: errors.KindParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBackend(t, tt.handler)

			plan, err := NewHTTPClient(server.URL).GeneratePlan(context.Background(), mealplan.DefaultForm())
			if err == nil {
				t.Fatalf("GeneratePlan() = %+v, want error", plan)
			}
			if plan != nil {
				t.Error("plan should be nil on failure")
			}
			if got := errors.KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
			if got := errors.StatusCodeOf(err); got != tt.wantStatus {
				t.Errorf("StatusCodeOf() = %d, want %d", got, tt.wantStatus)
			}
			if !errors.Is(err, errors.ErrRequestFailed) {
				t.Error("error should match ErrRequestFailed")
			}
		})
	}
}

func TestWithTimeout_LeavesDefaultClientAlone(t *testing.T) {
	before := http.DefaultClient.Timeout
	c := NewHTTPClient("", WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))
	if c.httpClient == http.DefaultClient {
		t.Error("client should not share http.DefaultClient")
	}
	if http.DefaultClient.Timeout != before {
		t.Errorf("http.DefaultClient.Timeout = %v, want %v", http.DefaultClient.Timeout, before)
	}
}

func TestGeneratePlan_BodyOverLimit(t *testing.T) {
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"targets":{"Recommended_Water_ml":2500},"padding":"`)
		_, _ = io.WriteString(w, strings.Repeat("x", maxBodyBytes))
		_, _ = io.WriteString(w, `","mealPlan":{}}`)
	})

	_, err := NewHTTPClient(server.URL).GeneratePlan(context.Background(), mealplan.DefaultForm())
	if got := errors.KindOf(err); got != errors.KindParse {
		t.Fatalf("KindOf() = %v, want parse", got)
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %q, want the size limit named", err.Error())
	}
}

func TestGeneratePlan_BodyAtLimit(t *testing.T) {
	prefix := `{"targets":{"Recommended_Water_ml":2500},"mealPlan":{},"padding":"`
	suffix := `"}`
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, prefix)
		_, _ = io.WriteString(w, strings.Repeat("x", maxBodyBytes-len(prefix)-len(suffix)))
		_, _ = io.WriteString(w, suffix)
	})

	if _, err := NewHTTPClient(server.URL).GeneratePlan(context.Background(), mealplan.DefaultForm()); err != nil {
		t.Fatalf("GeneratePlan() at the limit error = %v", err)
	}
}

func TestGeneratePlan_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPClient(url).GeneratePlan(context.Background(), mealplan.DefaultForm())
	if err == nil {
		t.Fatal("GeneratePlan() should fail when the service is down")
	}
	if got := errors.KindOf(err); got != errors.KindNetwork {
		t.Errorf("KindOf() = %v, want network", got)
	}
}

func TestGeneratePlan_WrongMethodNotRouted(t *testing.T) {
	calls := 0
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, sampleBody)
	})

	resp, err := http.Get(server.URL + config.GeneratePlanPath)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", resp.StatusCode)
	}
	if calls != 0 {
		t.Error("handler should only serve POST")
	}
}

func TestGeneratePlan_ContextCanceled(t *testing.T) {
	block := make(chan struct{})
	server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient(server.URL).GeneratePlan(ctx, mealplan.DefaultForm())
	if got := errors.KindOf(err); got != errors.KindNetwork {
		t.Errorf("KindOf() = %v, want network for canceled context", got)
	}
}

func TestRequestIDContext(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("RequestIDFrom(empty) = %q", got)
	}
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestIDFrom(ctx); got != "abc" {
		t.Errorf("RequestIDFrom() = %q, want abc", got)
	}
}
