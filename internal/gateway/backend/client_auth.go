package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginRequest is the backend login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend's successful login body.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
	Message     string          `json:"message"`
}

// Login exchanges credentials for a session token. Any HTTP status is
// returned as a Response; only transport failures are errors.
func (c *Client) Login(ctx context.Context, username, password string) (*Response, error) {
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("backend: encode login: %w", err)
	}
	return c.call(ctx, "auth.login", http.MethodPost, "/api/auth/login", "", "", body)
}

// Logout invalidates token on the backend.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.call(ctx, "auth.logout", http.MethodPost, "/api/auth/logout", "", token, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &StatusError{Operation: "auth.logout", StatusCode: resp.StatusCode}
	}
	return nil
}

// Me fetches the user bound to token.
func (c *Client) Me(ctx context.Context, token string) (*Response, error) {
	return c.call(ctx, "auth.me", http.MethodGet, "/api/auth/me", "", token, nil)
}

// Forward relays an arbitrary resource call. body is sent unchanged.
func (c *Client) Forward(
	ctx context.Context,
	operation, method, path, rawQuery, token string,
	body []byte,
) (*Response, error) {
	return c.call(ctx, operation, method, path, rawQuery, token, body)
}

// Health probes the backend's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.call(ctx, "health", http.MethodGet, "/health", "", "", nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &StatusError{Operation: "health", StatusCode: resp.StatusCode}
	}
	return nil
}
