package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
)

// maxBodyBytes caps the size of a response body. Larger payloads are
// rejected rather than truncated.
const maxBodyBytes = 1 << 20

// HTTP reads both slices from a pitwall-compatible data API.
type HTTP struct {
	baseURL *url.URL
	timeout time.Duration
	client  *http.Client
	logger  *logging.Logger
}

// HTTPOption configures an HTTP source.
type HTTPOption func(*HTTP)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = c
	}
}

// NewHTTP creates an HTTP source rooted at baseURL. Each request is bounded
// by timeout; a zero timeout leaves the bound to the caller's context.
func NewHTTP(baseURL string, timeout time.Duration, logger *logging.Logger, opts ...HTTPOption) (*HTTP, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.NewValidationError("base URL must be absolute").
			WithField("source.base_url").
			WithValue(baseURL).
			WithCause(err)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	h := &HTTP{
		baseURL: u,
		timeout: timeout,
		client:  http.DefaultClient,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Aerodynamic fetches GET /api/aerodynamic_data.
func (h *HTTP) Aerodynamic(ctx context.Context) (telemetry.AerodynamicData, error) {
	var data telemetry.AerodynamicData
	if err := h.get(ctx, telemetry.SliceAerodynamic.Endpoint(), &data); err != nil {
		return telemetry.AerodynamicData{}, err
	}
	if err := data.Validate(); err != nil {
		return telemetry.AerodynamicData{}, err
	}
	return data, nil
}

// Telemetry fetches GET /api/telemetry_data.
func (h *HTTP) Telemetry(ctx context.Context) (telemetry.TelemetryData, error) {
	var data telemetry.TelemetryData
	if err := h.get(ctx, telemetry.SliceTelemetry.Endpoint(), &data); err != nil {
		return telemetry.TelemetryData{}, err
	}
	if err := data.Validate(); err != nil {
		return telemetry.TelemetryData{}, err
	}
	return data, nil
}

func (h *HTTP) get(ctx context.Context, endpoint string, out any) error {
	reqCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	target := h.baseURL.JoinPath(endpoint).String()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return errors.NewSourceError("build request", err).
			WithSource("http").
			WithEndpoint(endpoint).
			WithRetryable(false)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return h.transportError(ctx, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return h.transportError(ctx, endpoint, err)
	}

	h.logger.Debug("request finished",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		return errors.NewSourceError(statusMessage(resp.StatusCode, body), nil).
			WithSource("http").
			WithEndpoint(endpoint).
			WithStatusCode(resp.StatusCode).
			WithRetryable(resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests)
	}

	if len(body) > maxBodyBytes {
		return errors.NewSourceError(fmt.Sprintf("response too large: exceeds %d bytes", maxBodyBytes), nil).
			WithSource("http").
			WithEndpoint(endpoint).
			WithStatusCode(resp.StatusCode).
			WithRetryable(false)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewValidationError("response is not valid JSON").
			WithField(endpoint).
			WithCause(err)
	}
	return nil
}

// transportError classifies a failed round trip. Cancellation by the caller
// is passed through untouched so the dashboard can discard the result.
func (h *HTTP) transportError(ctx context.Context, endpoint string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError("GET "+endpoint, h.timeout).WithCause(err)
	}
	return errors.NewSourceError("request failed", err).
		WithSource("http").
		WithEndpoint(endpoint)
}

func statusMessage(code int, body []byte) string {
	var eb telemetry.ErrorBody
	if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
		return fmt.Sprintf("unexpected status %d: %s", code, eb.Error)
	}
	return fmt.Sprintf("unexpected status %d", code)
}
