package voicesdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// Result is the outcome of Login. It never carries a Go error so callers
// can hand it straight to a UI.
type Result struct {
	Success bool
	Error   string
}

// Session is the client session context: the single source of truth for
// whether the caller is signed in and as whom.
type Session struct {
	client *Client

	mu            sync.RWMutex
	user          *User
	authenticated bool
	loading       bool
}

// NewSession creates a signed-out session. It reports Loading until Init,
// Login or Logout completes.
func NewSession(client *Client) *Session {
	return &Session{client: client, loading: true}
}

// Init restores the session from the cookie jar. Any failure leaves the
// session signed out.
func (s *Session) Init(ctx context.Context) {
	var u User
	err := s.client.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &u)

	if err != nil {
		s.reset()
		return
	}
	s.setUser(&u)
}

// Login signs in with username and password.
func (s *Session) Login(ctx context.Context, username, password string) Result {
	var out LoginResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: username, Password: password}, &out)

	if err != nil {
		// A failed attempt leaves any existing session in place
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return Result{Success: false, Error: errorMessage(err)}
	}

	s.setUser(&out.User)
	return Result{Success: true}
}

// Logout ends the session. The local state is cleared whatever the gateway
// answers.
func (s *Session) Logout(ctx context.Context) {
	_ = s.client.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	s.reset()
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether the session is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Loading reports whether the session state is still unknown.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// call performs a resource request, signing the session out on 401.
func (s *Session) call(ctx context.Context, method, path string, in, out any) error {
	err := s.client.doJSON(ctx, method, path, in, out)
	if IsUnauthorized(err) {
		s.reset()
	}
	return err
}

func (s *Session) setUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	s.authenticated = true
	s.loading = false
}

// reset signs out locally and drops the stored cookie.
func (s *Session) reset() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.loading = false
	s.mu.Unlock()

	s.client.resetCookies()
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Network error. Please try again."
}
