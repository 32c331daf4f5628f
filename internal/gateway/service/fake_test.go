package service

import (
	"context"
	"errors"
	"sync"

	"github.com/aussiebroadwan/voicelab/internal/gateway/backend"
)

type forwardCall struct {
	operation, method, path, rawQuery, token string
	body                                     []byte
}

// fakeBackend records calls and answers with canned responses.
type fakeBackend struct {
	mu sync.Mutex

	calls    int
	forwards []forwardCall
	logouts  []string

	resp      *backend.Response
	err       error
	logoutErr error
}

func (f *fakeBackend) record() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (*backend.Response, error) {
	f.record()
	return f.resp, f.err
}

func (f *fakeBackend) Logout(ctx context.Context, token string) error {
	f.record()
	f.logouts = append(f.logouts, token)
	return f.logoutErr
}

func (f *fakeBackend) Me(ctx context.Context, token string) (*backend.Response, error) {
	f.record()
	return f.resp, f.err
}

func (f *fakeBackend) Forward(ctx context.Context, operation, method, path, rawQuery, token string, body []byte) (*backend.Response, error) {
	f.record()
	f.forwards = append(f.forwards, forwardCall{operation, method, path, rawQuery, token, body})
	return f.resp, f.err
}

var errDial = errors.Join(backend.ErrUnreachable, errors.New("dial tcp: connection refused"))

func jsonResponse(status int, body string) *backend.Response {
	return &backend.Response{StatusCode: status, Body: []byte(body), ContentType: "application/json"}
}
