// Package backend is the console's only line to the academy REST API.
// It injects the session bearer token on every request, decodes the
// upstream's two response shapes, and turns HTTP failures into the error
// taxonomy the rest of the console works with.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource yields the current bearer token. ok is false when the
// session is anonymous or the token has expired locally.
type TokenSource interface {
	Token() (token string, ok bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger

	// onUnauthorized runs once per upstream 401, before the error is
	// returned, so the session is torn down no matter which call hit it.
	onUnauthorized func()
}

func NewClient(baseURL string, tokens TokenSource, onUnauthorized func(), logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		logger:  logger,

		onUnauthorized: onUnauthorized,
	}
}

func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// envelope is the upstream's wrapped response shape. Some endpoints
// return it, others return a bare JSON array; decode() handles both.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out, true)
	return err
}

// Post sends a mutation and returns the server's human-readable message,
// surfaced verbatim to the user when present.
func (c *Client) Post(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) Delete(ctx context.Context, path string) (string, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// PostAnonymous is for the login endpoint only: no bearer token required
// or sent.
func (c *Client) PostAnonymous(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, needAuth bool) (string, error) {
	var token string
	if needAuth {
		var ok bool
		token, ok = c.tokens.Token()
		if !ok {
			// Rejected locally: no network call with a dead session.
			return "", ErrSessionExpired
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return "", fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return "", ErrSessionExpired
	}

	env := parseEnvelope(raw)

	switch {
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: %s %s returned %d", ErrServerFault, method, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		msg := env.Error
		if msg == "" {
			msg = "the request could not be processed"
		}
		return "", &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := decodeInto(raw, env, out); err != nil {
			return "", fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}
	return env.Message, nil
}

func parseEnvelope(raw []byte) envelope {
	var env envelope
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env
	}
	// Best effort: an undecodable body is treated as an empty envelope.
	_ = json.Unmarshal(trimmed, &env)
	return env
}

// decodeInto unwraps {data: ...} envelopes and decodes bare payloads
// as-is.
func decodeInto(raw []byte, env envelope, out any) error {
	if len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(bytes.TrimSpace(raw), out)
}
