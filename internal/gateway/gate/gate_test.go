package gate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/voicelab/internal/gateway/gate"
	"github.com/aussiebroadwan/voicelab/internal/gateway/tokenstore"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want gate.Class
	}{
		{"/", gate.Public},
		{"/login", gate.Public},
		{"/about", gate.Public},
		{"/api/auth/login", gate.Public},
		{"/api/auth/me", gate.Public},
		{"/api/tts/voices", gate.Public},
		{"/providers", gate.Protected},
		{"/providers/", gate.Protected},
		{"/tts", gate.Protected},
		{"/tts/cartesia", gate.Protected},
		{"/stt", gate.Protected},
		{"/stt/live/session", gate.Protected},
		{"/ttsx", gate.Public},
		{"/sttatus", gate.Public},
		{"/unknown", gate.Public},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, gate.Classify(tt.path))
		})
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	t.Run("protected without token", func(t *testing.T) {
		d := gate.Decide("/tts/cartesia", false)
		require.Equal(t, gate.RedirectToLogin, d.Action)
		require.Equal(t, "/login?redirect=%2Ftts%2Fcartesia", d.Location)
	})

	t.Run("protected with token", func(t *testing.T) {
		require.Equal(t, gate.Allow, gate.Decide("/tts", true).Action)
	})

	t.Run("login with token", func(t *testing.T) {
		d := gate.Decide("/login", true)
		require.Equal(t, gate.RedirectToLanding, d.Action)
		require.Equal(t, "/providers", d.Location)
	})

	t.Run("public pages always allowed", func(t *testing.T) {
		for _, p := range []string{"/", "/about", "/login", "/api/auth/logout"} {
			require.Equal(t, gate.Allow, gate.Decide(p, false).Action, p)
		}
		for _, p := range []string{"/", "/about", "/api/auth/logout"} {
			require.Equal(t, gate.Allow, gate.Decide(p, true).Action, p)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, p := range []string{"/", "/login", "/stt", "/providers/x"} {
			for _, has := range []bool{true, false} {
				require.Equal(t, gate.Decide(p, has), gate.Decide(p, has))
			}
		}
	})

	t.Run("custom landing", func(t *testing.T) {
		cfg := gate.Config{LoginPath: "/login", LandingPath: "/tts"}
		require.Equal(t, "/tts", cfg.Decide("/login", true).Location)
	})
}

func TestMiddleware(t *testing.T) {
	store := tokenstore.New(false)
	h := gate.Middleware(gate.DefaultConfig(store))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(path string, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: tokenstore.CookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("redirects anonymous to login", func(t *testing.T) {
		rec := serve("/stt", "")
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "/login?redirect=%2Fstt", rec.Header().Get("Location"))
	})

	t.Run("redirect drops query", func(t *testing.T) {
		rec := serve("/tts?voice=abc", "")
		require.Equal(t, "/login?redirect=%2Ftts", rec.Header().Get("Location"))
	})

	t.Run("redirects signed in away from login", func(t *testing.T) {
		rec := serve("/login", "tok")
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "/providers", rec.Header().Get("Location"))
	})

	t.Run("empty cookie counts as absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/providers", nil)
		req.AddCookie(&http.Cookie{Name: tokenstore.CookieName, Value: ""})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})

	t.Run("passes through", func(t *testing.T) {
		require.Equal(t, http.StatusOK, serve("/providers", "tok").Code)
		require.Equal(t, http.StatusOK, serve("/about", "").Code)
	})
}
