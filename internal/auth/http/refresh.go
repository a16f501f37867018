package http

import (
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP rotates the session. The middleware has already verified
// the bearer token as a refresh credential; the raw token still goes to
// the service, which checks it against the stored session hash.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	rawToken := httpx.RawTokenFromContext(ctx)
	if userID == "" || rawToken == "" {
		writeBearerMissing(w)
		return
	}

	pair, err := h.AuthService.Refresh(ctx, userID, httpx.MobileFromContext(ctx), rawToken)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}

func writeBearerMissing(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error:            "invalid_token",
		ErrorDescription: "Missing or invalid bearer token",
	})
}
