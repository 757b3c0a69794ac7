package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TokenSource supplies the bearer credential for protected calls.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource for a fixed credential (tests, scripts).
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// manages HTTP requests to the Fraude REST API
type Client struct {
	endpoint   string
	tokens     TokenSource
	httpClient *http.Client
}

// creates a new API client
func NewClient(endpoint string, tokens TokenSource) *Client {
	return &Client{
		endpoint: endpoint,
		tokens:   tokens,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// authenticates with email and password, returning the bearer token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var result loginResponse

	payload := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", payload, false, &result); err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", &RequestError{Kind: KindServer, Message: "login response contained no token"}
	}

	return result.Token, nil
}

// creates a new account
func (c *Client) Register(ctx context.Context, email, username, password, confirm string) error {
	payload := registerRequest{
		Email:           email,
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	}

	return c.do(ctx, http.MethodPost, "/register", payload, false, nil)
}

// invalidates the credential server-side. Callers treat failure as
// non-fatal: local cleanup proceeds regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, true, nil)
}

// fetches the caller's chat sessions
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var result listSessionsResponse

	if err := c.do(ctx, http.MethodGet, "/chat/sessions", nil, true, &result); err != nil {
		return nil, err
	}

	return result.Sessions, nil
}

// creates a session with the given title (server defaults it if empty)
func (c *Client) CreateSession(ctx context.Context, title string) (*Session, error) {
	var result createSessionResponse

	payload := createSessionRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "/chat/sessions", payload, true, &result); err != nil {
		return nil, err
	}

	if result.SessionID == "" {
		return nil, &RequestError{Kind: KindServer, Message: "create session response contained no id"}
	}

	return &Session{ID: result.SessionID, Title: result.Title}, nil
}

// deletes a session by id
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/chat/sessions/"+url.PathEscape(id), nil, true, nil)
}

// fetches stored messages for a session, oldest first
func (c *Client) ListMessages(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	var result listMessagesResponse

	path := "/chat/message?session_id=" + url.QueryEscape(sessionID) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &result); err != nil {
		return nil, err
	}

	return result.Messages, nil
}

// submits a message and returns the bot reply. The caller controls the
// per-attempt deadline through ctx.
func (c *Client) SendMessage(ctx context.Context, content, sessionID, mode string) (*SendResult, error) {
	var result SendResult

	payload := sendMessageRequest{Content: content, SessionID: sessionID, Mode: mode}
	if err := c.do(ctx, http.MethodPost, "/chat/message", payload, true, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// fetches one page of the admin session listing
func (c *Client) AdminSessions(ctx context.Context, page, limit int) (*AdminPage, error) {
	var result AdminPage

	path := "/admin/sessions?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// builds, sends and decodes a single request
func (c *Client) do(ctx context.Context, method, path string, payload any, protected bool, out any) error {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if protected {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return networkError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeFailure(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &RequestError{Kind: KindServer, Status: resp.StatusCode, Message: "failed to parse response", Err: err}
		}
	}

	return nil
}

// turns a non-2xx response into a classified error, preferring the
// server's own error field over the raw body
func decodeFailure(status int, raw []byte) *RequestError {
	message := ""

	var errResp errorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	kind := KindServer
	if status == http.StatusUnauthorized {
		kind = KindAuth
	}

	return &RequestError{Kind: kind, Status: status, Message: message}
}

// default ceiling for any single request
const requestTimeout = 60 * time.Second
