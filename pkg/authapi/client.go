package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the auth backend. BaseURL includes the API prefix,
// e.g. "http://localhost:5000/api/v1".
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates an unauthenticated client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("authapi: %d: %s", e.StatusCode, e.Msg)
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. On success the client remembers the issued
// session token for subsequent authenticated calls.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login authenticates and keeps the issued session token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var out AuthResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// SetAvatar updates the authenticated user's avatar.
func (c *Client) SetAvatar(ctx context.Context, avatar string) (*AuthResponse, error) {
	var out AuthResponse
	req := SetAvatarRequest{Avatar: avatar}
	if err := c.do(ctx, http.MethodPost, "/auth/setavatar", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllUsers lists every user except the caller.
func (c *Client) AllUsers(ctx context.Context) ([]UserSummary, error) {
	var out UsersResponse
	if err := c.do(ctx, http.MethodGet, "/auth/allusers", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Logout drops the client-side session. The server holds no session state,
// so this also clears the remembered token.
func (c *Client) Logout(ctx context.Context) error {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, &out, http.StatusOK)
	c.token = ""
	return err
}

// Token exposes the current session token, if any.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, in, out any, wantStatus int) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("authapi: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("authapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("authapi: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope AuthResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Msg = envelope.Msg
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("authapi: decode response: %w", err)
		}
	}
	return nil
}
