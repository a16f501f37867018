package http

import (
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP ends the session. Logging out with no live session is still
// a success, so retries and double-clicks behave.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeBearerMissing(w)
		return
	}

	if err := h.AuthService.Logout(ctx, userID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
