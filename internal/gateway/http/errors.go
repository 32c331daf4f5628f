package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/voicelab/internal/gateway/service"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
)

// tokenClearer drops the session cookie.
type tokenClearer interface {
	Clear(w http.ResponseWriter)
}

// writeServiceError maps the service error taxonomy onto the browser
// contract. A backend 401 means the stored token is dead, so the cookie is
// cleared as well when tokens is non-nil.
func writeServiceError(w http.ResponseWriter, r *http.Request, tokens tokenClearer, err error) {
	log := slogx.FromContext(r.Context())

	var (
		verr *service.ValidationError
		uerr *service.UpstreamError
	)

	switch {
	case errors.As(err, &verr):
		voicesdk.NewAPIError(http.StatusBadRequest, verr.Message).WriteError(w)

	case errors.Is(err, service.ErrUnauthenticated):
		voicesdk.ErrNotAuthenticated.WriteError(w)

	case errors.As(err, &uerr):
		log.Info("backend rejected request", "status", uerr.StatusCode)
		if uerr.StatusCode == http.StatusUnauthorized && tokens != nil {
			tokens.Clear(w)
		}
		voicesdk.NewAPIError(uerr.StatusCode, uerr.Message).WriteError(w)

	default:
		log.Error("backend call failed", "err", err)
		voicesdk.ErrInternal.WriteError(w)
	}
}
