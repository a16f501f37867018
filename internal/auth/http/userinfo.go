package http

import (
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

type UserInfoHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated account's profile.
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeBearerMissing(w)
		return
	}

	u, err := h.AuthService.Info(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UserInfoResponse{
		UserID:      u.ID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
	})
}
