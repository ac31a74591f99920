// Package client implements the HTTP transport against the BizChat
// Assistant API: it exchanges a user message for a bot reply, scoped by the
// per-run session identifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the endpoint used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds a single exchange.
	DefaultTimeout = 30 * time.Second

	// FallbackReply is the fixed user-facing text shown for any failed
	// exchange, matching the original BizChat UI language.
	FallbackReply = "Lo siento, no he podido obtener una respuesta. Inténtalo de nuevo."
)

// ErrorKind classifies a transport failure. The user sees one fallback text
// either way; the kind lets callers and tests tell the causes apart.
type ErrorKind int

const (
	ErrNetwork ErrorKind = iota + 1 // request never completed
	ErrStatus                       // non-2xx response
	ErrDecode                       // unparseable response body
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNetwork:
		return "network"
	case ErrStatus:
		return "status"
	case ErrDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a typed transport failure.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status code, set for ErrStatus
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrStatus:
		return fmt.Sprintf("chat request failed: unexpected status %d", e.Status)
	default:
		return fmt.Sprintf("chat request failed (%s): %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// chatRequest is the wire format for POST /chat.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the expected reply body.
type chatResponse struct {
	Response string `json:"response"`
}

// Client talks to a BizChat Assistant endpoint. All requests carry the same
// session identifier as a query parameter.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
	logf       func(format string, args ...any)
}

// New creates a client for the given base URL and session identifier.
// A zero timeout falls back to DefaultTimeout.
func New(baseURL, sessionID string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		sessionID:  sessionID,
		httpClient: &http.Client{Timeout: timeout},
		logf:       func(string, ...any) {},
	}
}

// SetLogf sets the diagnostic channel for absorbed failures.
func (c *Client) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		c.logf = logf
	}
}

// SessionID returns the identifier sent with every request.
func (c *Client) SessionID() string {
	return c.sessionID
}

// endpoint builds {base}/{path}?session_id={id}.
func (c *Client) endpoint(path string) string {
	q := url.Values{}
	q.Set("session_id", c.sessionID)
	return c.baseURL + path + "?" + q.Encode()
}

// Send posts a message and returns the reply text. Failures come back as
// *Error with the kind preserved; Send never retries.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", &Error{Kind: ErrDecode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/chat"), bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Kind: ErrStatus, Status: resp.StatusCode, Err: fmt.Errorf("%s", body)}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &Error{Kind: ErrDecode, Err: err}
	}

	return result.Response, nil
}

// Reply sends a message and absorbs any failure into FallbackReply, logging
// the underlying error to the diagnostic channel. It never returns an error:
// the caller always gets text to render.
func (c *Client) Reply(ctx context.Context, message string) string {
	reply, err := c.Send(ctx, message)
	if err != nil {
		c.logf("chat exchange failed: %v", err)
		return FallbackReply
	}
	return reply
}

// ClearHistory asks the server to drop the conversation state for this
// session. The response body is ignored.
func (c *Client) ClearHistory(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/clear-history"), nil)
	if err != nil {
		return &Error{Kind: ErrNetwork, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Kind: ErrStatus, Status: resp.StatusCode}
	}
	return nil
}

// Health checks the API root and returns its status message.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: ErrNetwork, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Kind: ErrStatus, Status: resp.StatusCode, Err: fmt.Errorf("%s", body)}
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &Error{Kind: ErrDecode, Err: err}
	}
	return result.Message, nil
}

// Intents returns the tags of the intents loaded by the assistant.
func (c *Client) Intents(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/intents", nil)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: ErrStatus, Status: resp.StatusCode, Err: fmt.Errorf("%s", body)}
	}

	var result struct {
		Intents []struct {
			Tag string `json:"tag"`
		} `json:"intents"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{Kind: ErrDecode, Err: err}
	}

	tags := make([]string, 0, len(result.Intents))
	for _, intent := range result.Intents {
		tags = append(tags, intent.Tag)
	}
	return tags, nil
}
