package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aussiebroadwan/voicelab/internal/gateway/service"
	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
)

// TokenStore is the session cookie store used by the auth handlers.
type TokenStore interface {
	httpx.TokenSource
	tokenClearer
	Set(w http.ResponseWriter, token string, expiresAt time.Time)
}

// maxLoginBody bounds the credential envelope.
const maxLoginBody = 16 << 10

type AuthHandler struct {
	Sessions *service.SessionService
	Tokens   TokenStore
}

// loginResponse mirrors voicesdk.LoginResponse with the user relayed as is.
type loginResponse struct {
	User    json.RawMessage `json:"user"`
	Message string          `json:"message"`
}

// HandleLogin exchanges credentials for a session cookie.
//
//	@Summary		Log in
//	@Description	Authenticates against the backend and stores the session token in an HTTP-only cookie.
//	@Description	The token is never included in the response body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		voicesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	voicesdk.LoginResponse	"User and message; sets the access_token cookie"
//	@Failure		400		{object}	voicesdk.ErrorResponse	"Missing username or password"
//	@Failure		401		{object}	voicesdk.ErrorResponse	"Backend rejected the credentials"
//	@Failure		429		{object}	voicesdk.ErrorResponse	"Too many attempts"
//	@Failure		500		{object}	voicesdk.ErrorResponse	"Backend unreachable"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req voicesdk.LoginRequest
	// A malformed body is treated as missing credentials.
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&req)

	res, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, nil, err)
		return
	}

	h.Tokens.Set(w, res.Token, res.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		User:    res.User,
		Message: res.Message,
	})
}

// HandleLogout ends the session.
//
//	@Summary		Log out
//	@Description	Notifies the backend when a session cookie is present, then clears the cookie.
//	@Description	Always succeeds, even when the backend cannot be reached.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	voicesdk.MessageResponse	"Logout successful"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := h.Tokens.Get(r)
	h.Sessions.Logout(r.Context(), token)

	h.Tokens.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, voicesdk.MessageResponse{Message: "Logout successful"})
}

// HandleMe returns the user bound to the session cookie.
//
//	@Summary		Current user
//	@Description	Returns the backend's user document for the session cookie.
//	@Tags			Auth
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.User			"Authenticated user"
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session or session rejected by the backend"
//	@Failure		500	{object}	voicesdk.ErrorResponse	"Backend unreachable"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	token := httpx.TokenFromContext(r.Context())

	resp, err := h.Sessions.CurrentUser(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, h.Tokens, err)
		return
	}
	httpx.WriteRawJSON(w, resp.StatusCode, resp.Body)
}
