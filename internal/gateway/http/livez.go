package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the gateway process is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	voicesdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, voicesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
