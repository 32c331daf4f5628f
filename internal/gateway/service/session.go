package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/voicelab/internal/gateway/backend"
	"github.com/aussiebroadwan/voicelab/internal/gateway/domain"
	"github.com/aussiebroadwan/voicelab/pkg/jwtx"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
)

// Backend is the subset of the backend client the services use.
type Backend interface {
	Login(ctx context.Context, username, password string) (*backend.Response, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*backend.Response, error)
	Forward(ctx context.Context, operation, method, path, rawQuery, token string, body []byte) (*backend.Response, error)
}

const (
	MsgCredentialsRequired = "Username and password are required"
	MsgLoginFailed         = "Login failed"
	MsgGetUserFailed       = "Failed to get user"
)

var errNoToken = errors.New("login response carried no access token")

// SessionService logs browser sessions in and out of the backend.
type SessionService struct {
	Backend Backend
}

// Login authenticates against the backend. On success the result holds the
// token to store; it must not be sent back to the browser.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: MsgCredentialsRequired}
	}

	resp, err := s.Backend.Login(ctx, username, password)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.OK() {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Message(MsgLoginFailed),
			Auth:       true,
		}
	}

	var lr backend.LoginResponse
	if err := resp.Decode(&lr); err != nil {
		return nil, &TransportError{Err: err}
	}
	if lr.AccessToken == "" {
		return nil, &TransportError{Err: errNoToken}
	}

	res := &domain.LoginResult{
		Token:   lr.AccessToken,
		User:    lr.User,
		Message: lr.Message,
	}
	if res.Message == "" {
		res.Message = domain.DefaultLoginMessage
	}
	if exp, ok := jwtx.PeekExpiry(lr.AccessToken); ok {
		res.ExpiresAt = exp
	}

	slogx.FromContext(ctx).Info("login succeeded")
	return res, nil
}

// Logout tells the backend to drop token. It never fails: the local session
// ends whatever the backend says.
func (s *SessionService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}

	IgnoreFailure(func() error {
		err := s.Backend.Logout(ctx, token)
		if err != nil {
			slogx.FromContext(ctx).Warn("backend logout failed", "error", err)
		}
		return err
	})
}

// CurrentUser returns the backend's user document for token.
func (s *SessionService) CurrentUser(ctx context.Context, token string) (*backend.Response, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	resp, err := s.Backend.Me(ctx, token)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.OK() {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Message(MsgGetUserFailed),
			Auth:       true,
		}
	}
	return resp, nil
}
