package http

import (
	"net/http"
	"time"

	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/lanternchat/lantern/internal/auth/store"
	"github.com/lanternchat/lantern/pkg/httpx"
)

// ReadyzHandler checks the database and the session store. Either one
// failing its ping degrades the service to 503.
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	sessions session.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{
			Database: "ok",
			Sessions: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := sessions.Ping(r.Context()); err != nil {
			checks.Sessions = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
