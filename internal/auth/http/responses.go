package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/lanternchat/lantern/pkg/httpx"
)

// ErrorResponse is the `{error, error_description}` body every failure
// path returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// UserInfoResponse is the profile body behind GET /v1/auth/info.
type UserInfoResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

func writeInvalidRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unmapped is a server fault and logs at error level.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "password_confirmation_mismatch",
			ErrorDescription: "Password and confirmation do not match",
		})
	case errors.Is(err, service.ErrDuplicateIdentity):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "duplicate_identity",
			ErrorDescription: "Phone number is already registered",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:            "invalid_credentials",
			ErrorDescription: "Phone number or password is incorrect",
		})
	case errors.Is(err, service.ErrSessionRevoked):
		httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{
			Error:            "session_revoked",
			ErrorDescription: "Session has been revoked or expired, log in again",
		})
	case errors.Is(err, service.ErrTokenMismatch):
		httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{
			Error:            "refresh_token_mismatch",
			ErrorDescription: "Refresh token does not match the current session",
		})
	case errors.Is(err, session.ErrUnavailable):
		log.Error("session store unavailable", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:            "storage_unavailable",
			ErrorDescription: "Session storage is temporarily unavailable",
		})
	default:
		log.Error("unhandled service error", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Internal server error",
		})
	}
}
