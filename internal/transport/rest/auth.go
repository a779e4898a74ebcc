package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/okazimirov/learnlog-backend/internal/domain"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, password string) (string, error)
}

// AuthHandler serves the shared-password login endpoint.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Message: err.Error()})
		case errors.Is(err, domain.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Message: "invalid password"})
		default:
			// Includes the missing-server-secret configuration error.
			h.log.ErrorContext(r.Context(), "login failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Message: "server configuration error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, Message: "login successful"})
}
