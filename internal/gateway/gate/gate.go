// Package gate decides, per page request, whether the browser may proceed
// or must be redirected. It only looks at cookie presence; whether the token
// is still valid is for the backend to say.
package gate

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
)

// Class is the access class of a path.
type Class int

const (
	Public Class = iota
	Protected
)

func (c Class) String() string {
	if c == Protected {
		return "protected"
	}
	return "public"
}

// ProtectedPrefixes are the page trees that need a session.
var ProtectedPrefixes = []string{"/providers", "/tts", "/stt"}

// Classify returns Protected for a protected prefix or anything nested under
// one, and Public for every other path.
func Classify(path string) Class {
	for _, prefix := range ProtectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return Protected
		}
	}
	return Public
}

// Action is what the gate does with a request.
type Action int

const (
	Allow Action = iota
	RedirectToLogin
	RedirectToLanding
)

// Decision is the gate's verdict. Location is set for redirects.
type Decision struct {
	Action   Action
	Location string
}

// Config holds the gate's redirect targets.
type Config struct {
	LoginPath   string
	LandingPath string
	Tokens      httpx.TokenSource
}

// DefaultConfig uses /login and /providers.
func DefaultConfig(tokens httpx.TokenSource) Config {
	return Config{LoginPath: "/login", LandingPath: "/providers", Tokens: tokens}
}

// Decide is pure: the same path and token presence always give the same
// decision.
func (c Config) Decide(path string, hasToken bool) Decision {
	switch {
	case Classify(path) == Protected && !hasToken:
		q := url.Values{"redirect": {path}}
		return Decision{Action: RedirectToLogin, Location: c.LoginPath + "?" + q.Encode()}
	case path == c.LoginPath && hasToken:
		return Decision{Action: RedirectToLanding, Location: c.LandingPath}
	default:
		return Decision{Action: Allow}
	}
}

// Decide applies DefaultConfig.
func Decide(path string, hasToken bool) Decision {
	return DefaultConfig(nil).Decide(path, hasToken)
}

// Middleware enforces the gate with 307 redirects.
func Middleware(cfg Config) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasToken := cfg.Tokens.Get(r)

			d := cfg.Decide(r.URL.Path, hasToken)
			if d.Action == Allow {
				next.ServeHTTP(w, r)
				return
			}

			slogx.FromContext(r.Context()).Debug("gate redirect",
				"path", r.URL.Path,
				"location", d.Location,
			)
			httpx.NoCache(w)
			http.Redirect(w, r, d.Location, http.StatusTemporaryRedirect)
		})
	}
}
