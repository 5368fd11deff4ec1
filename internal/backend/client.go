package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reviewdesk/internal/config"
	apperrors "reviewdesk/internal/shared/errors"
	"reviewdesk/internal/shared/logger"
)

// TokenSource yields the current session credential, if any. The session
// layer owns the credential; the client only attaches it.
type TokenSource interface {
	Token() (string, bool)
}

// Client is a thin wrapper over the backend REST API. It attaches the
// bearer credential, normalizes error and success shapes, and nothing
// else: no retries, no queuing, no deduplication of concurrent calls.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logger.Logger
}

// noToken is the zero TokenSource; requests go out without a bearer
// header.
type noToken struct{}

func (noToken) Token() (string, bool) { return "", false }

// NewClient creates a backend API client. tokens may be nil; use
// WithTokens to bind the per-request session before gated calls.
func NewClient(cfg *config.Config, tokens TokenSource, log logger.Logger) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if tokens == nil {
		tokens = noToken{}
	}
	return &Client{
		baseURL: cfg.BackendBaseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.WithComponent("backend_client"),
	}
}

// WithTokens returns a shallow copy of the client bound to the given
// credential source. The underlying *http.Client is shared.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	cp := *c
	if tokens == nil {
		tokens = noToken{}
	}
	cp.tokens = tokens
	return &cp
}

// Do issues a request against the backend. body is JSON-encoded when
// non-nil; out receives the decoded response body when non-nil. A 204
// response is success with no payload regardless of out.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("encode request body").WithCause(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return apperrors.NewInternalError("build request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithContext(ctx).Errorf("%s %s failed: %v", method, endpoint, err)
		return apperrors.NewTransportError(err).WithComponent("backend_client")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError(err).WithComponent("backend_client")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A non-JSON error body is fine; the generic message stands in.
		_ = json.Unmarshal(raw, &eb)
		c.log.WithContext(ctx).Errorf("%s %s returned %d: %s", method, endpoint, resp.StatusCode, eb.Message)
		return apperrors.NewStatusError(resp.StatusCode, eb.Message).WithComponent("backend_client")
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("decode %s %s response", method, endpoint)).WithCause(err)
		}
	}
	return nil
}
