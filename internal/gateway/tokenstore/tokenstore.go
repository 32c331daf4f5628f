// Package tokenstore keeps the backend session token in an HTTP-only cookie
// so browser scripts never see it.
package tokenstore

import (
	"net/http"
	"time"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "access_token"

	// DefaultMaxAge matches the backend's token lifetime.
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Store reads and writes the session cookie.
type Store struct {
	Name   string
	Secure bool
	MaxAge time.Duration

	now func() time.Time
}

// New returns a Store using the standard cookie name and lifetime. secure
// should be true in production so the cookie only travels over TLS.
func New(secure bool) *Store {
	return &Store{
		Name:   CookieName,
		Secure: secure,
		MaxAge: DefaultMaxAge,
		now:    time.Now,
	}
}

// Get returns the stored token. An empty cookie counts as absent.
func (s *Store) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.Name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set stores token. When expiresAt is non-zero and sooner than MaxAge the
// cookie expires with the token instead.
func (s *Store) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	maxAge := s.MaxAge
	if !expiresAt.IsZero() {
		if left := expiresAt.Sub(s.clock()); left > 0 && left < maxAge {
			maxAge = left
		}
	}

	c := s.cookie(token)
	c.MaxAge = int(maxAge / time.Second)
	http.SetCookie(w, c)
}

// Clear removes the cookie from the browser.
func (s *Store) Clear(w http.ResponseWriter) {
	c := s.cookie("")
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func (s *Store) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
