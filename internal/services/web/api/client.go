// Package api is the HTTP client for the betting pool backend.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nlwcopa/bolao/internal/platform/timeouts"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/nlwcopa/bolao/internal/services/web/api"

	poolsPath        = "/pools"
	poolsCountPath   = "/pools/count"
	guessesCountPath = "/guesses/count"
	usersCountPath   = "/users/count"

	maxResponseBytes = 1 << 20
)

// ErrMalformedResponse reports a 2xx response missing the expected fields.
var ErrMalformedResponse = errors.New("malformed api response")

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Config holds the explicit client settings. There is no shared default client.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:3333.
	BaseURL string
	// Timeout bounds each call. Zero uses timeouts.APIRequest.
	Timeout time.Duration
	// HTTPClient overrides the transport. Nil uses a fresh http.Client.
	HTTPClient *http.Client
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	// Propagator defaults to the global text map propagator.
	Propagator propagation.TextMapPropagator
}

// Client calls the backend count and pool endpoints.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	httpClient *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must use http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api base url %q has no host", raw)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	propagator := cfg.Propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}
	return &Client{
		baseURL:    base,
		timeout:    timeout,
		httpClient: httpClient,
		tracer:     tp.Tracer(tracerName),
		propagator: propagator,
	}, nil
}

// CountPools returns the total number of pools.
func (c *Client) CountPools(ctx context.Context) (int64, error) {
	return c.count(ctx, poolsCountPath)
}

// CountGuesses returns the total number of guesses.
func (c *Client) CountGuesses(ctx context.Context) (int64, error) {
	return c.count(ctx, guessesCountPath)
}

// CountUsers returns the total number of users.
func (c *Client) CountUsers(ctx context.Context) (int64, error) {
	return c.count(ctx, usersCountPath)
}

// CreatePool creates a pool titled title and returns its share code.
// The title is sent verbatim.
func (c *Client) CreatePool(ctx context.Context, title string) (string, error) {
	payload, err := sjson.SetBytes(nil, "title", title)
	if err != nil {
		return "", fmt.Errorf("encode create pool request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, poolsPath, payload)
	if err != nil {
		return "", err
	}
	code := gjson.GetBytes(body, "code")
	if code.Type != gjson.String || strings.TrimSpace(code.Str) == "" {
		return "", fmt.Errorf("%s %s: code: %w", http.MethodPost, poolsPath, ErrMalformedResponse)
	}
	return code.Str, nil
}

func (c *Client) count(ctx context.Context, path string) (int64, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	value := gjson.GetBytes(body, "count")
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%s %s: count: %w", http.MethodGet, path, ErrMalformedResponse)
	}
	// Parse the literal: gjson's float path cannot tell 2^63 from MaxInt64.
	n, err := strconv.ParseInt(value.Raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s %s: count %s: %w", http.MethodGet, path, value.Raw, ErrMalformedResponse)
	}
	return n, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (_ []byte, err error) {
	if c == nil {
		return nil, errors.New("api client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL.JoinPath(path)
	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target.String()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s %s: invalid json: %w", method, path, ErrMalformedResponse)
	}
	return body, nil
}
