package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields never reach the backend", func(t *testing.T) {
		for _, creds := range [][2]string{{"", "pw"}, {"alice", ""}, {"", ""}} {
			fb := &fakeBackend{}
			svc := &SessionService{Backend: fb}

			_, err := svc.Login(ctx, creds[0], creds[1])
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, MsgCredentialsRequired, verr.Message)
			require.Zero(t, fb.calls)
		}
	})

	t.Run("whitespace username is forwarded", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusUnauthorized, `{"detail":"Invalid credentials"}`)}
		svc := &SessionService{Backend: fb}

		_, err := svc.Login(ctx, "  ", "pw")
		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, "Invalid credentials", uerr.Message)
		require.Equal(t, 1, fb.calls)
	})

	t.Run("success returns token and user", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusOK,
			`{"access_token":"opaque","user":{"id":"u1","username":"alice"},"message":"Login successful"}`)}
		svc := &SessionService{Backend: fb}

		res, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		require.Equal(t, "opaque", res.Token)
		require.True(t, res.ExpiresAt.IsZero())
		require.JSONEq(t, `{"id":"u1","username":"alice"}`, string(res.User))
		require.Equal(t, "Login successful", res.Message)
	})

	t.Run("jwt expiry is surfaced", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
		require.NoError(t, err)

		fb := &fakeBackend{resp: jsonResponse(http.StatusOK, `{"access_token":"`+token+`","user":{}}`)}
		res, err := (&SessionService{Backend: fb}).Login(ctx, "alice", "secret")
		require.NoError(t, err)
		require.True(t, exp.Equal(res.ExpiresAt))
		require.Equal(t, "Login successful", res.Message)
	})

	t.Run("backend rejection relays status and detail", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusUnauthorized, `{"detail":"Invalid username or password"}`)}
		_, err := (&SessionService{Backend: fb}).Login(ctx, "alice", "wrong")

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, http.StatusUnauthorized, uerr.StatusCode)
		require.Equal(t, "Invalid username or password", uerr.Message)
		require.True(t, uerr.Auth)
	})

	t.Run("rejection without detail uses default", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusBadGateway, `oops`)}
		_, err := (&SessionService{Backend: fb}).Login(ctx, "alice", "pw")

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, MsgLoginFailed, uerr.Message)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		fb := &fakeBackend{err: errDial}
		_, err := (&SessionService{Backend: fb}).Login(ctx, "alice", "pw")

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("success without token is a transport failure", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusOK, `{"user":{}}`)}
		_, err := (&SessionService{Backend: fb}).Login(ctx, "alice", "pw")

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("no token makes no call", func(t *testing.T) {
		fb := &fakeBackend{}
		(&SessionService{Backend: fb}).Logout(ctx, "")
		require.Zero(t, fb.calls)
	})

	t.Run("backend failure is ignored", func(t *testing.T) {
		fb := &fakeBackend{logoutErr: errors.New("boom")}
		(&SessionService{Backend: fb}).Logout(ctx, "tok")
		require.Equal(t, []string{"tok"}, fb.logouts)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("no token makes no call", func(t *testing.T) {
		fb := &fakeBackend{}
		_, err := (&SessionService{Backend: fb}).CurrentUser(ctx, "")
		require.ErrorIs(t, err, ErrUnauthenticated)
		require.Zero(t, fb.calls)
	})

	t.Run("relays user", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusOK, `{"id":"u1","username":"alice"}`)}
		resp, err := (&SessionService{Backend: fb}).CurrentUser(ctx, "tok")
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"u1","username":"alice"}`, string(resp.Body))
	})

	t.Run("expired session relays 401", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusUnauthorized, `{"detail":"Invalid or expired session"}`)}
		_, err := (&SessionService{Backend: fb}).CurrentUser(ctx, "stale")

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, http.StatusUnauthorized, uerr.StatusCode)
		require.Equal(t, "Invalid or expired session", uerr.Message)
	})

	t.Run("default message", func(t *testing.T) {
		fb := &fakeBackend{resp: jsonResponse(http.StatusInternalServerError, `{}`)}
		_, err := (&SessionService{Backend: fb}).CurrentUser(ctx, "tok")

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, MsgGetUserFailed, uerr.Message)
	})
}

func TestIgnoreFailure(t *testing.T) {
	var ran bool
	IgnoreFailure(func() error {
		ran = true
		return errors.New("discarded")
	})
	require.True(t, ran)
}
