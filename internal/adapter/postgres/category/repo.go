// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/okazimirov/learnlog-backend/internal/adapter/postgres"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all categories ordered by name ascending.
// Returns an empty slice (not nil) when there are no categories.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	query, args, err := builder.
		Select("id", "name").
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	var categories []domain.Category
	if err := pgxscan.Select(ctx, r.db, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return categories, nil
}

// Create inserts a new category. Duplicate names are treated as idempotent
// success: the existing row is returned with created=false.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, bool, error) {
	query, args, err := builder.
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id, name").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build create category: %w", err)
	}

	var cat domain.Category
	err = pgxscan.Get(ctx, r.db, &cat, query, args...)
	if err == nil {
		return &cat, true, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, false, postgres.MapError(err, "category", 0)
	}

	// ON CONFLICT DO NOTHING returned no row: the name already exists.
	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

// GetByName returns a category by its unique name.
// Returns domain.ErrNotFound if no category has that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query, args, err := builder.
		Select("id", "name").
		From("categories").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category by name: %w", err)
	}

	var cat domain.Category
	if err := pgxscan.Get(ctx, r.db, &cat, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "category", 0)
	}

	return &cat, nil
}

// Exists reports whether a category with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := builder.
		Select("1").
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build category exists: %w", err)
	}

	var one int
	if err := pgxscan.Get(ctx, r.db, &one, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, postgres.MapError(err, "category", id)
	}

	return true, nil
}
