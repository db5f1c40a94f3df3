package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/pkg/employeesdk"
	"github.com/aussiebroadwan/employees/pkg/httpx"
	"github.com/aussiebroadwan/employees/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe returning service status plus the database check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	employeesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	employeesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &employeesdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "error", err)
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, employeesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
