// Package backend talks to the VoiceLab backend API on behalf of browser
// sessions. It never interprets provider payloads; callers get the raw
// status and body back.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aussiebroadwan/voicelab/internal/gateway/backend"

// maxResponseBytes bounds buffered responses. Generated audio arrives as a
// base64 data URL, so this is generous.
const maxResponseBytes = 64 << 20

// ErrUnreachable wraps every failure to obtain a response from the backend.
var ErrUnreachable = errors.New("backend: unreachable")

// Client is an HTTP client for the backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tracer   trace.Tracer
	requests *prometheus.CounterVec
}

// Option configures a Client.
type Option func(*Client)

// WithMetrics counts backend calls by operation and outcome on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.requests = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "voicelab",
			Subsystem: "gateway",
			Name:      "backend_requests_total",
			Help:      "Backend API calls by operation and outcome",
		}, []string{"operation", "outcome"})
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// NewClient creates a backend client. A zero timeout leaves requests bounded
// only by their context.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a fully buffered backend response.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

// Message extracts a human readable message from an error body. The backend
// reports failures as {"detail": "..."}; "error" and "message" are accepted
// too. Structured details (validation error lists) fall back to def.
func (r *Response) Message(def string) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return def
	}
	for _, key := range []string{"detail", "error", "message"} {
		var s string
		if err := json.Unmarshal(body[key], &s); err == nil && s != "" {
			return s
		}
	}
	return def
}

// StatusError is returned by calls that expect success and got a non-2xx.
type StatusError struct {
	Operation  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s returned %d", e.Operation, e.StatusCode)
}

// call performs one traced and counted backend request.
func (c *Client) call(
	ctx context.Context,
	operation, method, path, rawQuery, token string,
	body []byte,
) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "backend "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	resp, err := c.do(ctx, method, path, rawQuery, token, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unreachable")
		c.count(operation, "unreachable")
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	c.count(operation, outcome(resp.StatusCode))
	return resp, nil
}

func (c *Client) do(
	ctx context.Context,
	method, path, rawQuery, token string,
	body []byte,
) (*Response, error) {
	target := c.BaseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnreachable, err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Body:        raw,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (c *Client) count(operation, result string) {
	if c.requests != nil {
		c.requests.WithLabelValues(operation, result).Inc()
	}
}

func outcome(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "rejected"
	default:
		return "ok"
	}
}
