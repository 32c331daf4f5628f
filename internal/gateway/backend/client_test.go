package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/voicelab/internal/gateway/backend"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req backend.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid username or password"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","user":{"id":"u1","username":"alice"},"message":"Login successful"}`))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL, 0)

	t.Run("success", func(t *testing.T) {
		resp, err := c.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		require.True(t, resp.OK())

		var lr backend.LoginResponse
		require.NoError(t, resp.Decode(&lr))
		require.Equal(t, "tok", lr.AccessToken)
		require.JSONEq(t, `{"id":"u1","username":"alice"}`, string(lr.User))
	})

	t.Run("rejected", func(t *testing.T) {
		resp, err := c.Login(context.Background(), "alice", "wrong")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Invalid username or password", resp.Message("Login failed"))
	})
}

func TestForward(t *testing.T) {
	var got struct {
		method, path, query, auth, body, contentType string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got.method, got.path, got.query = r.Method, r.URL.Path, r.URL.RawQuery
		got.auth, got.body, got.contentType = r.Header.Get("Authorization"), string(raw), r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"requests":[],"total":0}`))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL+"/", 0)

	t.Run("get with query", func(t *testing.T) {
		resp, err := c.Forward(context.Background(), "tts.history", http.MethodGet, "/api/tts/history", "limit=5&offset=10", "tok", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.ContentType)
		require.JSONEq(t, `{"requests":[],"total":0}`, string(resp.Body))

		require.Equal(t, http.MethodGet, got.method)
		require.Equal(t, "/api/tts/history", got.path)
		require.Equal(t, "limit=5&offset=10", got.query)
		require.Equal(t, "Bearer tok", got.auth)
		require.Empty(t, got.contentType)
	})

	t.Run("post body unchanged", func(t *testing.T) {
		body := `{"text":"Hi","speed":1.25,"unknown":[1,2]}`
		_, err := c.Forward(context.Background(), "cartesia.generate", http.MethodPost, "/api/cartesia/generate", "", "tok", []byte(body))
		require.NoError(t, err)
		require.Equal(t, body, got.body)
		require.Equal(t, "application/json", got.contentType)
	})
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	reg := prometheus.NewRegistry()
	c := backend.NewClient(url, 0, backend.WithMetrics(reg))

	_, err := c.Me(context.Background(), "tok")
	require.ErrorIs(t, err, backend.ErrUnreachable)
	require.Equal(t, 1.0, counterValue(t, reg, "auth.me", "unreachable"))
}

func TestLogoutAndHealth(t *testing.T) {
	status := http.StatusOK
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	c := backend.NewClient(srv.URL, 0, backend.WithMetrics(reg))

	require.NoError(t, c.Logout(context.Background(), "tok"))
	require.Equal(t, "Bearer tok", auth)
	require.NoError(t, c.Health(context.Background()))

	status = http.StatusServiceUnavailable
	err := c.Health(context.Background())
	var se *backend.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusServiceUnavailable, se.StatusCode)

	require.Equal(t, 1.0, counterValue(t, reg, "auth.logout", "ok"))
	require.Equal(t, 1.0, counterValue(t, reg, "health", "error"))
}

func TestResponseMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, body, want string
	}{
		{"detail", `{"detail":"Invalid or expired session"}`, "Invalid or expired session"},
		{"error", `{"error":"quota exceeded"}`, "quota exceeded"},
		{"message", `{"message":"nope"}`, "nope"},
		{"structured detail", `{"detail":[{"loc":["body","text"],"msg":"field required"}]}`, "fallback"},
		{"empty detail", `{"detail":""}`, "fallback"},
		{"not json", `<html>bad gateway</html>`, "fallback"},
		{"empty", ``, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &backend.Response{StatusCode: 400, Body: []byte(tt.body)}
			require.Equal(t, tt.want, r.Message("fallback"))
		})
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, operation, outcome string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "voicelab_gateway_backend_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["operation"] == operation && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
