package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client is the HTTP adapter for the student records API. It attaches the
// bearer token, tags every request with an X-Request-ID, decodes each
// endpoint's envelope into its typed result, and folds responses into the
// error taxonomy (session failure, domain error, network error, decode error).
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse base URL %q", baseURL)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

// errorEnvelope is the shape the backend uses for non-2xx bodies. Some
// endpoints use "message", some "error"; both are read.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do issues one request and decodes a 2xx body into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s body", path)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, rdr)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("requestId", req.Header.Get("X-Request-ID")),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are logged and surfaced as retryable; they never
		// terminate the session.
		c.log.Warn("api request failed", zap.String("path", path), zap.Error(err))
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.classifyUnauthorized(resp, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return &APIError{StatusCode: resp.StatusCode, Message: env.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}
	return nil
}

// classifyUnauthorized separates a dead session from a domain-level 401.
// Only messages matching the known token phrases force a re-login; anything
// else (e.g. "payment status not available") stays an ordinary API error.
func (c *Client) classifyUnauthorized(resp *http.Response, path string) error {
	var env errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	msg := env.text()
	if isSessionFailure(msg) {
		c.log.Warn("session failure", zap.String("path", path), zap.String("message", msg))
		return fmt.Errorf("%s: %w", msg, ErrSessionExpired)
	}
	return &APIError{StatusCode: http.StatusUnauthorized, Message: msg}
}
