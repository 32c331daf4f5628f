//go:build e2e

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
	"github.com/stretchr/testify/require"
)

// TestGateway shares one container across subtests.
func TestGateway(t *testing.T) {
	baseURL := setupGatewayContainer(t)
	ctx := context.Background()

	t.Run("livez", func(t *testing.T) {
		health, err := voicesdk.NewClient(baseURL).GetLiveness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
	})

	t.Run("readyz degraded without backend", func(t *testing.T) {
		_, err := voicesdk.NewClient(baseURL).GetReadiness(ctx)

		var apiErr *voicesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("protected page redirects to login", func(t *testing.T) {
		resp, err := noRedirectClient().Get(baseURL + "/tts/cartesia")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		require.Equal(t, "/login?redirect=%2Ftts%2Fcartesia", resp.Header.Get("Location"))
	})

	t.Run("prefix lookalike is public", func(t *testing.T) {
		resp, err := noRedirectClient().Get(baseURL + "/ttsx")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("login page is public", func(t *testing.T) {
		resp, err := noRedirectClient().Get(baseURL + "/login")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	})

	t.Run("login page with cookie redirects to landing", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/login", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "anything"})

		resp, err := noRedirectClient().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		require.Equal(t, "/providers", resp.Header.Get("Location"))
	})

	t.Run("me without session", func(t *testing.T) {
		s := voicesdk.NewSession(voicesdk.NewClient(baseURL))
		s.Init(ctx)
		require.False(t, s.IsAuthenticated())

		_, err := s.Voices(ctx)
		require.True(t, voicesdk.IsUnauthorized(err))
	})

	t.Run("login without credentials", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/api/auth/login", "application/json", strings.NewReader(`{"username":"alice"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body voicesdk.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Username and password are required", body.Error)
	})

	t.Run("login with backend down", func(t *testing.T) {
		s := voicesdk.NewSession(voicesdk.NewClient(baseURL))
		res := s.Login(ctx, "alice", "secret")
		require.False(t, res.Success)
		require.Equal(t, "Internal server error", res.Error)
	})

	t.Run("logout always succeeds", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/api/auth/logout", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		for _, c := range resp.Cookies() {
			if c.Name == "access_token" {
				require.Equal(t, -1, c.MaxAge)
			}
		}
	})
}
