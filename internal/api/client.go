// Package api is the authenticated REST client for the SheShape backend.
// It injects the bearer credential on every call, maps response status codes
// to user-facing notifications, and exposes typed service methods for the
// profile, nutrition-plan and product endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier surfaces a category-specific message to the user. The client never
// prints; the CLI and the wizard decide how notifications are shown.
type Notifier func(message string)

// Client talks to the backend. Safe for use from the single UI goroutine and
// from submission tasks; it has no mutable state of its own.
type Client struct {
	baseURL   string
	http      *http.Client
	log       *zap.Logger
	token     func() string
	onExpired func()
	notify    Notifier
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTokenSource sets the bearer-credential source. An empty string means
// no session; the Authorization header is then omitted.
func WithTokenSource(token func() string) Option {
	return func(c *Client) { c.token = token }
}

// WithSessionExpiredHandler is invoked on a 401 so the caller can clear the
// stored session and route the user back to login.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onExpired = fn }
}

// WithNotifier sets the user-notification sink.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notify = n }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       zap.NewNop(),
		token:     func() string { return "" },
		onExpired: func() {},
		notify:    func(string) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request sends a JSON request and decodes a JSON response into out (which
// may be nil for endpoints with empty bodies).
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, "application/json", rdr, out)
}

// do is the transport core shared by JSON requests and multipart uploads.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.notify("Network error. Please check your connection.")
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug("request complete",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}
		}
		return nil
	}

	apiErr := &Error{Status: resp.StatusCode, Message: parseMessage(data)}
	c.handleErrorStatus(apiErr)
	return apiErr
}

// handleErrorStatus surfaces the category-specific notification. Session
// expiry additionally wipes the session so the user is routed to login.
func (c *Client) handleErrorStatus(apiErr *Error) {
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		c.onExpired()
		c.notify("Your session has expired. Please log in again.")
	case apiErr.Status == http.StatusForbidden:
		c.notify("You do not have permission to perform this action")
	case apiErr.Status == http.StatusNotFound:
		c.notify("The requested resource was not found")
	case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
		if apiErr.Message != "" {
			c.notify(apiErr.Message)
		} else {
			c.notify("Validation error. Please check your input.")
		}
	case apiErr.Status >= 500:
		c.notify("Server error. Please try again later.")
	}
}

// parseMessage extracts the structured {"message": ...} field the backend
// uses for error payloads.
func parseMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
