package http

import (
	"encoding/json"
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// ServeHTTP verifies the password and returns a fresh token pair. Any
// previous session for the account is replaced.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if req.PhoneNumber == "" {
		writeInvalidRequest(w, "phone_number is required")
		return
	}
	if req.Password == "" {
		writeInvalidRequest(w, "password is required")
		return
	}

	pair, err := h.AuthService.Login(ctx, req.PhoneNumber, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}
