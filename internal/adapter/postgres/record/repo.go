// Package record implements the learning-record repository using PostgreSQL.
// All read queries LEFT JOIN categories so a record keeps resolving after its
// category is deleted (category_id is set NULL by the schema).
package record

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/okazimirov/learnlog-backend/internal/adapter/postgres"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides learning-record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// selectJoined is the base SELECT for all joined reads.
func selectJoined() sq.SelectBuilder {
	return builder.
		Select(
			"lr.id",
			"lr.title",
			"lr.content",
			"lr.category_id",
			"lr.created_at",
			"c.name AS category_name",
		).
		From("learning_records lr").
		LeftJoin("categories c ON lr.category_id = c.id")
}

// ListAll returns every record joined with its category name,
// newest first. Returns an empty slice (not nil) when there are no records.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Record, error) {
	query, args, err := selectJoined().
		OrderBy("lr.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records: %w", err)
	}

	var records []domain.Record
	if err := pgxscan.Select(ctx, r.db, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	if records == nil {
		records = []domain.Record{}
	}

	return records, nil
}

// ListPage returns one offset-based page of records, newest first, with the
// total row count for the same filter. totalPages is ceil(total/limit).
func (r *Repo) ListPage(ctx context.Context, f PageFilter) (*domain.RecordPage, error) {
	f.normalize()

	countQuery := builder.Select("COUNT(*)").From("learning_records lr")
	pageQuery := selectJoined()

	if f.CategoryID != nil {
		cond := sq.Eq{"lr.category_id": *f.CategoryID}
		countQuery = countQuery.Where(cond)
		pageQuery = pageQuery.Where(cond)
	}

	query, args, err := countQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count records: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.db, &total, query, args...); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	query, args, err = pageQuery.
		OrderBy("lr.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.offset())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page records: %w", err)
	}

	var records []domain.Record
	if err := pgxscan.Select(ctx, r.db, &records, query, args...); err != nil {
		return nil, fmt.Errorf("page records: %w", err)
	}

	if records == nil {
		records = []domain.Record{}
	}

	return &domain.RecordPage{
		Records:      records,
		TotalRecords: total,
		CurrentPage:  f.Page,
		TotalPages:   (total + f.Limit - 1) / f.Limit,
		Limit:        f.Limit,
	}, nil
}

// GetByID returns a record joined with its category name.
// Returns domain.ErrNotFound if no record has that id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	query, args, err := selectJoined().
		Where(sq.Eq{"lr.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record: %w", err)
	}

	var rec domain.Record
	if err := pgxscan.Get(ctx, r.db, &rec, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "record", id)
	}

	return &rec, nil
}

// Create inserts a new record and returns the persisted row without the
// resolved category name; callers needing it must re-fetch.
// Returns domain.ErrInvalidReference if category_id does not resolve.
func (r *Repo) Create(ctx context.Context, params domain.CreateRecordParams) (*domain.Record, error) {
	query, args, err := builder.
		Insert("learning_records").
		Columns("title", "content", "category_id").
		Values(params.Title, params.Content, params.CategoryID).
		Suffix("RETURNING id, title, content, category_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create record: %w", err)
	}

	var rec domain.Record
	if err := pgxscan.Get(ctx, r.db, &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", 0)
	}

	return &rec, nil
}

// Update applies a partial update: title is always set, content and
// category_id only when present in params (explicit null clears).
// The updated row is re-fetched joined with its category name.
func (r *Repo) Update(ctx context.Context, id int64, params domain.UpdateRecordParams) (*domain.Record, error) {
	update := builder.
		Update("learning_records").
		Set("title", params.Title).
		Where(sq.Eq{"id": id})

	if params.Content.Set {
		update = update.Set("content", params.Content.Value)
	}
	if params.CategoryID.Set {
		update = update.Set("category_id", params.CategoryID.Value)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a record and returns its id and title for confirmation
// messaging. Returns domain.ErrNotFound if no row matches.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error) {
	query, args, err := builder.
		Delete("learning_records").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete record: %w", err)
	}

	var deleted domain.DeletedRecord
	if err := r.db.QueryRow(ctx, query, args...).Scan(&deleted.ID, &deleted.Title); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	return &deleted, nil
}

// ListByDateRange returns records created within the inclusive [from, to]
// bounds (either may be nil), oldest first. An empty result is not an error.
func (r *Repo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]domain.Record, error) {
	q := selectJoined()

	if from != nil {
		q = q.Where(sq.GtOrEq{"lr.created_at": *from})
	}
	if to != nil {
		q = q.Where(sq.LtOrEq{"lr.created_at": *to})
	}

	query, args, err := q.OrderBy("lr.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build date-range records: %w", err)
	}

	var records []domain.Record
	if err := pgxscan.Select(ctx, r.db, &records, query, args...); err != nil {
		return nil, fmt.Errorf("date-range records: %w", err)
	}

	if records == nil {
		records = []domain.Record{}
	}

	return records, nil
}
