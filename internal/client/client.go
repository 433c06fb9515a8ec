// Package client is a typed HTTP client for the farm API, shared by farmctl and the Discord bot.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// Client calls the farm API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries uint64
	retryDelay time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetries sets how many times transport errors and 5xx responses are retried
func WithRetries(maxRetries uint64, initialDelay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryDelay = initialDelay
	}
}

// New creates a client for the API at baseURL
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.retryDelay
	eb.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(eb, c.maxRetries), ctx)
}

// do sends one JSON request with retries and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgMarshalFailed, err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	log := logger.FromContext(ctx)
	var resp *http.Response
	attempt := 0

	operation := func() error {
		attempt++
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: %w", ErrMsgBuildRequest, err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set(HeaderAPIKey, c.apiKey)
		}
		if id := logger.GetRequestID(ctx); id != "" {
			req.Header.Set(HeaderRequestID, id)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			return readAPIError(r)
		}
		resp = r
		return nil
	}

	notify := func(err error, delay time.Duration) {
		log.Warn(LogMsgRetrying, "path", path, "attempt", attempt, "delay", delay, "error", err)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	return nil
}

// readAPIError drains and closes the body
func readAPIError(r *http.Response) *APIError {
	defer r.Body.Close()
	apiErr := &APIError{StatusCode: r.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
		return apiErr
	}
	// Middleware errors are plain text
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
