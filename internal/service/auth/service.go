// Package auth gates access behind the single shared password and issues
// verifiable session tokens instead of trusting a client-side flag.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	internalauth "github.com/okazimirov/learnlog-backend/internal/auth"
	"github.com/okazimirov/learnlog-backend/internal/config"
	"github.com/okazimirov/learnlog-backend/internal/domain"
	"github.com/okazimirov/learnlog-backend/pkg/ctxutil"
)

type tokenManager interface {
	GenerateToken(role string) (string, error)
	ValidateToken(token string) (string, error)
}

// Service handles login and session-token validation.
type Service struct {
	cfg    config.AuthConfig
	tokens tokenManager
	log    *slog.Logger
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, cfg config.AuthConfig, tokens tokenManager) *Service {
	return &Service{
		cfg:    cfg,
		tokens: tokens,
		log:    logger.With("service", "auth"),
	}
}

// Login checks the shared password and returns a signed session token with
// the owner role. An empty password is a validation error; a misconfigured
// server (no secret at all) surfaces as a plain error, not ErrUnauthorized.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", domain.NewValidationError("password", "is required")
	}

	ok, err := internalauth.VerifyPassword(password, s.cfg.Password, s.cfg.PasswordHash)
	if err != nil {
		s.log.ErrorContext(ctx, "password verification failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(string(ctxutil.RoleOwner))
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	return token, nil
}

// ValidateToken checks a bearer token and returns the role it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Role, error) {
	role, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}
	if role != string(ctxutil.RoleOwner) {
		return "", fmt.Errorf("unknown role %q: %w", role, domain.ErrUnauthorized)
	}
	return ctxutil.RoleOwner, nil
}
