// Package api is the HTTP gateway every remote call goes through.
//
// The client attaches the bearer token from the session store to each
// outgoing request and owns the base URL, resolved once at startup.
// It deliberately does nothing else: no retries, no token refresh, and
// no judgement about response statuses. A 401 or 403 is returned to the
// caller as a normal Response; deciding what an error status means is
// the synchronization layer's job.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/log"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client dispatches requests against the configured API base URL.
type Client struct {
	baseURL string
	http    *http.Client
	sess    session.Reader
	logger  *log.Logger
}

// NewClient creates a gateway client. The base URL is fixed for the
// lifetime of the client.
func NewClient(baseURL string, sess session.Reader, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		sess:    sess,
		logger:  logger,
	}
}

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is the surfaced result of a dispatched request. HTTP error
// statuses are data, not Go errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(errors.ErrCodeServerBadPayload, "unexpected response payload", err)
	}
	return nil
}

// Message extracts the server-supplied {"message": ...} from the body,
// falling back to the given generic message.
func (r *Response) Message(fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}

// Do dispatches a request. The bearer token is injected when the
// session store holds one and omitted otherwise. Only transport
// failures return an error.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetworkUnreachable, "failed to build request", err)
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("request failed before reaching the server",
			"method", method, "path", path, "request_id", requestID)
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeNetworkTimeout, "request cancelled or timed out", err)
		}
		return nil, errors.Wrap(errors.ErrCodeNetworkUnreachable, "request never reached the server", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetworkUnreachable, "failed to read response", err)
	}

	c.logger.Debug("request completed",
		"method", method, "path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(started).Milliseconds())

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// DoJSON marshals payload as the JSON request body and dispatches it.
// A nil payload sends no body.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidationInput, fmt.Sprintf("failed to encode %s body", method), err)
		}
		body = bytes.NewReader(raw)
	}

	header := http.Header{}
	if payload != nil {
		header.Set("Content-Type", "application/json")
	}

	return c.Do(ctx, method, path, body, header)
}

// Get dispatches a bodyless GET.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Delete dispatches a bodyless DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
