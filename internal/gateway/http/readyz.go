package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
)

// HealthChecker probes a dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// readyTimeout bounds the backend probe.
const readyTimeout = 3 * time.Second

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Probes the backend /health endpoint; 503 when the backend is unavailable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	voicesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	voicesdk.HealthResponse	"backend unavailable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, backend HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &voicesdk.HealthChecks{Backend: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := backend.Health(ctx); err != nil {
			checks.Backend = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, voicesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
