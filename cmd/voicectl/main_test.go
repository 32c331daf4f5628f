package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type gatewayStub struct {
	logins  atomic.Int64
	logouts atomic.Int64
}

func newGatewayStub(t *testing.T) (*gatewayStub, string) {
	t.Helper()

	g := &gatewayStub{}
	mux := http.NewServeMux()

	reply := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("access_token"); err != nil || c.Value != "tok" {
				reply(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		g.logins.Add(1)
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "secret" {
			reply(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "tok", Path: "/"})
		reply(w, http.StatusOK, map[string]any{"user": map[string]string{"id": "u-1", "username": req["username"]}})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		g.logouts.Add(1)
		reply(w, http.StatusOK, map[string]string{"message": "Logout successful"})
	})
	mux.HandleFunc("GET /api/cartesia/voices", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"voices": []map[string]string{{"voice_id": "c1", "name": "Barbershop Man"}}})
	}))
	mux.HandleFunc("POST /api/cartesia/generate", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]string{
			"request_id": "r-9",
			"audio_url":  "data:audio/wav;base64," + base64.StdEncoding.EncodeToString([]byte("RIFF")),
		})
	}))
	mux.HandleFunc("POST /api/tts/generate", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusBadRequest, map[string]string{"error": "Text must be at most 5000 characters"})
	}))
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]string{"status": "ok", "version": "v0.1.0", "uptime": "1m0s"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return g, srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "dev\n", out)
}

func TestCredentialsRequired(t *testing.T) {
	t.Setenv("VOICELAB_USERNAME", "")
	t.Setenv("VOICELAB_PASSWORD", "")
	g, url := newGatewayStub(t)

	_, err := run(t, "--url", url, "whoami")
	require.ErrorContains(t, err, "credentials required")
	require.Zero(t, g.logins.Load())
}

func TestWhoami(t *testing.T) {
	g, url := newGatewayStub(t)

	out, err := run(t, "--url", url, "-u", "alice", "-p", "secret", "whoami")
	require.NoError(t, err)
	require.Equal(t, "alice (u-1)\n", out)
	require.EqualValues(t, 1, g.logouts.Load())
}

func TestLoginFailure(t *testing.T) {
	_, url := newGatewayStub(t)

	_, err := run(t, "--url", url, "-u", "alice", "-p", "nope", "whoami")
	require.EqualError(t, err, "login failed: Invalid credentials")
}

func TestCredentialsFromEnv(t *testing.T) {
	_, url := newGatewayStub(t)
	t.Setenv("VOICELAB_URL", url)
	t.Setenv("VOICELAB_USERNAME", "bob")
	t.Setenv("VOICELAB_PASSWORD", "secret")

	out, err := run(t, "whoami")
	require.NoError(t, err)
	require.Equal(t, "bob (u-1)\n", out)
}

func TestVoices(t *testing.T) {
	_, url := newGatewayStub(t)

	out, err := run(t, "--url", url, "-u", "alice", "-p", "secret", "voices", "--provider", "cartesia")
	require.NoError(t, err)
	require.Contains(t, out, "Barbershop Man")
	require.Contains(t, out, "c1")

	_, err = run(t, "--url", url, "-u", "alice", "-p", "secret", "voices", "--provider", "acme")
	require.ErrorContains(t, err, `unknown provider "acme"`)
}

func TestGenerate(t *testing.T) {
	g, url := newGatewayStub(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.wav")

	out, err := run(t, "--url", url, "-u", "alice", "-p", "secret",
		"generate", "--provider", "cartesia", "--out", path, "Hello", "there")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 4 bytes of audio/wav")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "RIFF", string(data))
	require.EqualValues(t, 1, g.logouts.Load())
}

func TestGenerateDefaultFileName(t *testing.T) {
	_, url := newGatewayStub(t)
	t.Chdir(t.TempDir())

	_, err := run(t, "--url", url, "-u", "alice", "-p", "secret",
		"generate", "--provider", "cartesia", "Hi")
	require.NoError(t, err)

	_, err = os.Stat("speech-r-9.wav")
	require.NoError(t, err)
}

func TestGenerateRejected(t *testing.T) {
	g, url := newGatewayStub(t)

	_, err := run(t, "--url", url, "-u", "alice", "-p", "secret", "generate", "Hi")
	require.ErrorContains(t, err, "Text must be at most 5000 characters")
	// Still signs out after a failed call
	require.EqualValues(t, 1, g.logouts.Load())
}

func TestHealth(t *testing.T) {
	_, url := newGatewayStub(t)

	out, err := run(t, "--url", url, "health")
	require.NoError(t, err)
	require.Equal(t, "ok (version v0.1.0, up 1m0s)\n", out)
}
