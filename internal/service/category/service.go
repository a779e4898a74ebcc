// Package category implements category management on top of the
// PostgreSQL repository.
package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/okazimirov/learnlog-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, bool, error)
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		categories: categories,
		log:        logger.With("service", "category"),
	}
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// Create adds a category with the trimmed name. Creating a duplicate name is
// idempotent: the existing row is returned with created=false so the HTTP
// layer can answer 200 instead of 201.
func (s *Service) Create(ctx context.Context, name string) (*domain.Category, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, domain.NewValidationError("name", "must not be empty")
	}

	cat, created, err := s.categories.Create(ctx, name)
	if err != nil {
		return nil, false, err
	}

	if !created {
		s.log.InfoContext(ctx, "category already exists", slog.String("name", name))
	}

	return cat, created, nil
}
