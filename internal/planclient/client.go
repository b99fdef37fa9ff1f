// Package planclient performs the boundary call to the meal-plan service.
package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/errors"
	"github.com/Iron-Ham/dietplanner/internal/logging"
	"github.com/Iron-Ham/dietplanner/internal/mealplan"
)

const (
	// DefaultBaseURL is the address of a locally running meal-plan service.
	DefaultBaseURL = "http://127.0.0.1:5000"

	// RequestIDHeader carries the submission's request ID to the service.
	RequestIDHeader = "X-Request-ID"

	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 4 << 20
)

// Client defines the interface for generating a meal plan from a form.
type Client interface {
	// GeneratePlan submits the form and returns the decoded plan.
	GeneratePlan(ctx context.Context, form mealplan.FormState) (*mealplan.MealPlan, error)
}

// HTTPClient implements Client with a JSON POST to {baseURL}/generate-plan.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient uses a copy of hc for requests. Later options never
// modify hc itself.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		if hc != nil {
			clone := *hc
			c.httpClient = &clone
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		clone := *c.httpClient
		clone.Timeout = timeout
		c.httpClient = &clone
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewHTTPClient creates a client for the service at baseURL. An empty
// baseURL selects DefaultBaseURL.
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig creates a client from the backend section of the configuration.
func FromConfig(cfg config.BackendConfig, logger *logging.Logger) *HTTPClient {
	return NewHTTPClient(cfg.URL, WithTimeout(cfg.Timeout), WithLogger(logger))
}

// URL returns the full endpoint address.
func (c *HTTPClient) URL() string {
	return config.BackendConfig{URL: c.baseURL}.PlanURL()
}

// GeneratePlan posts the form as JSON and decodes the response. Any 2xx
// status is success. Failures are returned as *errors.PlanError tagged
// with their kind. The request is never retried.
func (c *HTTPClient) GeneratePlan(ctx context.Context, form mealplan.FormState) (*mealplan.MealPlan, error) {
	requestID := RequestIDFrom(ctx)
	logger := c.logger
	if requestID != "" {
		logger = logger.WithRequest(requestID)
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	start := time.Now()
	logger.Debug("sending plan request", "url", req.URL.String(), "payload", string(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Errorf("send request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errors.NewParseError(fmt.Errorf("read response: %w", err))
	}
	if len(body) > maxBodyBytes {
		logger.Debug("plan response too large", "status", resp.StatusCode, "limit_bytes", maxBodyBytes)
		return nil, errors.NewParseError(fmt.Errorf("response exceeds %d byte limit", maxBodyBytes))
	}

	logger.Debug("plan response received",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewStatusError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	plan, err := mealplan.ParsePlan(body)
	if err != nil {
		return nil, errors.NewParseError(err)
	}
	return plan, nil
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID sent in the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
