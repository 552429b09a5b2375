// Package api holds the typed HTTP clients for the marketplace backend.
// The backend is consumed as an opaque REST surface; nothing here owns
// business logic beyond encoding requests and decoding the response
// envelope.
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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderCorrelationID is attached to every outgoing request so backend logs
// can be tied to a single client action.
const HeaderCorrelationID = "X-Correlation-Id"

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// Client is the shared base for the typed clients. The zero http.Client
// default carries a 10s timeout; no request runs without a deadline.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   TokenSource
	logger  *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, token TokenSource, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: u, http: httpClient, token: token, logger: logger}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(HeaderCorrelationID, uuid.NewString())
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	return req, nil
}

// doJSON executes one request and decodes the body into out (when non-nil).
// Non-2xx responses come back as *APIError carrying the backend's message.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// response mirrors the backend's {success, message, data} envelope.
type response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// inEnvelope runs a request whose body arrives wrapped in the standard
// envelope and unwraps data, turning success=false into an *APIError.
func inEnvelope[T any](ctx context.Context, c *Client, method, path string, query url.Values, in any) (T, error) {
	var zero T
	var env response[T]
	if err := c.doJSON(ctx, method, path, query, in, &env); err != nil {
		return zero, err
	}
	if !env.Success {
		return zero, &APIError{Status: http.StatusOK, Message: env.Message}
	}
	return env.Data, nil
}
