package http

import (
	"encoding/json"
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	Password       string `json:"password"`
	PasswordRepeat string `json:"password_repeat"`
}

// ServeHTTP creates an account and immediately opens a session for it,
// returning the first token pair.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if req.Name == "" {
		writeInvalidRequest(w, "name is required")
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

	pair, err := h.AuthService.Register(ctx, req.Name, req.PhoneNumber, req.Password, req.PasswordRepeat)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pair)
}
