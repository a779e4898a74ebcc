// Package record implements learning-record CRUD, pagination, and the shared
// date-ranged fetch used by both the export and summary features.
package record

import (
	"context"
	"log/slog"
	"strings"
	"time"

	pgrecord "github.com/okazimirov/learnlog-backend/internal/adapter/postgres/record"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

type recordRepo interface {
	ListAll(ctx context.Context) ([]domain.Record, error)
	ListPage(ctx context.Context, f pgrecord.PageFilter) (*domain.RecordPage, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	Create(ctx context.Context, params domain.CreateRecordParams) (*domain.Record, error)
	Update(ctx context.Context, id int64, params domain.UpdateRecordParams) (*domain.Record, error)
	Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error)
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]domain.Record, error)
}

type categoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service provides learning-record operations.
type Service struct {
	records    recordRepo
	categories categoryChecker
	log        *slog.Logger
}

// NewService creates a new record service.
func NewService(logger *slog.Logger, records recordRepo, categories categoryChecker) *Service {
	return &Service{
		records:    records,
		categories: categories,
		log:        logger.With("service", "record"),
	}
}

// ListAll returns every record joined with its category name, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Record, error) {
	return s.records.ListAll(ctx)
}

// ListPage returns one page of records. Invalid page/limit values fall back
// to 1 and 10 inside the repository.
func (s *Service) ListPage(ctx context.Context, page, limit int, categoryID *int64) (*domain.RecordPage, error) {
	return s.records.ListPage(ctx, pgrecord.PageFilter{
		Page:       page,
		Limit:      limit,
		CategoryID: categoryID,
	})
}

// Get returns a record by id joined with its category name.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Record, error) {
	return s.records.GetByID(ctx, id)
}

// Create validates and persists a new record. The referenced category must
// exist; the database FK is the final arbiter, the pre-check just produces a
// cleaner error for the common case.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Record, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}

	if input.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidReference
		}
	}

	return s.records.Create(ctx, domain.CreateRecordParams{
		Title:      title,
		Content:    trimOrNil(input.Content),
		CategoryID: input.CategoryID,
	})
}

// Update applies a partial update: title is required, content and category
// are only touched when present in the input; explicit nulls clear them.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Record, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}

	params := domain.UpdateRecordParams{
		Title:      title,
		CategoryID: input.CategoryID,
	}

	if input.Content.Set {
		if input.Content.Value == nil {
			params.Content = domain.Null[string]()
		} else if v := strings.TrimSpace(*input.Content.Value); v == "" {
			params.Content = domain.Null[string]()
		} else {
			params.Content = domain.Some(v)
		}
	}

	return s.records.Update(ctx, id, params)
}

// Delete removes a record, returning its id and title for the confirmation
// message.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error) {
	return s.records.Delete(ctx, id)
}

// ListByDateRange returns records created within the inclusive day range,
// oldest first. Dates are "YYYY-MM-DD"; either may be empty. The range covers
// startDate 00:00:00 through endDate 23:59:59.
func (s *Service) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Record, error) {
	from, to, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.records.ListByDateRange(ctx, from, to)
}

const dateLayout = "2006-01-02"

// parseDateRange converts the optional date strings into inclusive bounds.
// Days are interpreted in the server's local timezone, matching the zone
// that CURRENT_TIMESTAMP stamps created_at with.
func parseDateRange(startDate, endDate string) (from, to *time.Time, err error) {
	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.Local)
		if err != nil {
			return nil, nil, domain.NewValidationError("startDate", "must be YYYY-MM-DD")
		}
		from = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.Local)
		if err != nil {
			return nil, nil, domain.NewValidationError("endDate", "must be YYYY-MM-DD")
		}
		end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &end
	}
	return from, to, nil
}

// trimOrNil trims whitespace. Returns nil if the input or result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
