package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/voicelab/pkg/slogx"
)

// TokenSource reads the session token carried by a request.
type TokenSource interface {
	Get(r *http.Request) (string, bool)
}

// MsgNotAuthenticated is the message sent with every missing-session 401.
const MsgNotAuthenticated = "Not authenticated"

// RequireSession rejects requests without a session token with 401 before
// any downstream work happens. Presence is all that is checked here; the
// backend stays the authority on validity.
func RequireSession(tokens TokenSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := tokens.Get(r)
			if !ok {
				slogx.FromContext(r.Context()).Debug("no session token")
				WriteError(w, http.StatusUnauthorized, MsgNotAuthenticated)
				return
			}

			ctx := ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
