// ABOUTME: Authenticated HTTP transport for the Breeze ChMS REST API
// ABOUTME: Builds tenant base URLs, injects the Api-Key header, and unwraps error envelopes
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Client issues authenticated GET requests against one Breeze tenant. All
// Breeze endpoints are GET with query parameters, including writes.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *zap.Logger
}

// Option adjusts client construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (timeouts, proxies).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger enables debug logging of requests and responses.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithBaseURL overrides the derived tenant URL. Mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// New creates a client for the tenant at subdomain.breezechms.com using the
// given API key.
func New(subdomain, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: fmt.Sprintf("https://%s.breezechms.com/api", subdomain),
		apiKey:  apiKey,
		httpc:   http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs one authenticated request and decodes the JSON body into out.
// A response object carrying success:false is surfaced as *Error with the
// remote's first error message.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestID := ulid.Make().String()
	start := time.Now()
	c.log.Debug("breeze request",
		zap.String("request_id", requestID),
		zap.String("path", path))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	c.log.Debug("breeze response",
		zap.String("request_id", requestID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if apiErr := errorEnvelope(body); apiErr != nil {
		return apiErr
	}
	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// errorEnvelope detects the {"success":false,"errors":[...]} failure shape.
// Array responses can never be envelopes, so only objects are inspected.
func errorEnvelope(body []byte) *Error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var env struct {
		Success *bool `json:"success"`
		Errors  []any `json:"errors"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil
	}
	if env.Success == nil || *env.Success {
		return nil
	}
	msg := "request failed"
	if len(env.Errors) > 0 {
		msg = fmt.Sprint(env.Errors[0])
	}
	return &Error{Message: msg}
}

// Error is an application-level failure reported by Breeze, either through
// the success:false envelope or a bare HTTP error status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("breeze: %s (HTTP %d)", e.Message, e.Status)
	}
	return "breeze: " + e.Message
}
