package record

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrecord "github.com/okazimirov/learnlog-backend/internal/adapter/postgres/record"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type recordRepoMock struct {
	ListAllFunc         func(ctx context.Context) ([]domain.Record, error)
	ListPageFunc        func(ctx context.Context, f pgrecord.PageFilter) (*domain.RecordPage, error)
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Record, error)
	CreateFunc          func(ctx context.Context, params domain.CreateRecordParams) (*domain.Record, error)
	UpdateFunc          func(ctx context.Context, id int64, params domain.UpdateRecordParams) (*domain.Record, error)
	DeleteFunc          func(ctx context.Context, id int64) (*domain.DeletedRecord, error)
	ListByDateRangeFunc func(ctx context.Context, from, to *time.Time) ([]domain.Record, error)
}

func (m *recordRepoMock) ListAll(ctx context.Context) ([]domain.Record, error) {
	return m.ListAllFunc(ctx)
}

func (m *recordRepoMock) ListPage(ctx context.Context, f pgrecord.PageFilter) (*domain.RecordPage, error) {
	return m.ListPageFunc(ctx, f)
}

func (m *recordRepoMock) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *recordRepoMock) Create(ctx context.Context, params domain.CreateRecordParams) (*domain.Record, error) {
	return m.CreateFunc(ctx, params)
}

func (m *recordRepoMock) Update(ctx context.Context, id int64, params domain.UpdateRecordParams) (*domain.Record, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *recordRepoMock) Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *recordRepoMock) ListByDateRange(ctx context.Context, from, to *time.Time) ([]domain.Record, error) {
	return m.ListByDateRangeFunc(ctx, from, to)
}

type categoryCheckerMock struct {
	ExistsFunc func(ctx context.Context, id int64) (bool, error)
}

func (m *categoryCheckerMock) Exists(ctx context.Context, id int64) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	catID := int64(3)

	tests := []struct {
		name       string
		input      CreateInput
		exists     bool
		existsErr  error
		wantErr    error
		wantParams *domain.CreateRecordParams
	}{
		{
			name:  "trims title and content",
			input: CreateInput{Title: "  Goroutines  ", Content: ptr("  channel basics  ")},
			wantParams: &domain.CreateRecordParams{
				Title:   "Goroutines",
				Content: ptr("channel basics"),
			},
		},
		{
			name:    "empty title rejected",
			input:   CreateInput{Title: "   "},
			wantErr: domain.ErrValidation,
		},
		{
			name:  "whitespace content stored as null",
			input: CreateInput{Title: "Goroutines", Content: ptr("   ")},
			wantParams: &domain.CreateRecordParams{
				Title: "Goroutines",
			},
		},
		{
			name:   "existing category accepted",
			input:  CreateInput{Title: "Indexes", CategoryID: &catID},
			exists: true,
			wantParams: &domain.CreateRecordParams{
				Title:      "Indexes",
				CategoryID: &catID,
			},
		},
		{
			name:    "missing category rejected",
			input:   CreateInput{Title: "Indexes", CategoryID: &catID},
			exists:  false,
			wantErr: domain.ErrInvalidReference,
		},
		{
			name:      "category check failure propagated",
			input:     CreateInput{Title: "Indexes", CategoryID: &catID},
			existsErr: errors.New("db down"),
			wantErr:   nil, // plain error, checked separately
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotParams domain.CreateRecordParams
			repo := &recordRepoMock{
				CreateFunc: func(ctx context.Context, params domain.CreateRecordParams) (*domain.Record, error) {
					gotParams = params
					return &domain.Record{ID: 1, Title: params.Title}, nil
				},
			}
			checker := &categoryCheckerMock{
				ExistsFunc: func(ctx context.Context, id int64) (bool, error) {
					return tt.exists, tt.existsErr
				},
			}
			svc := NewService(testLogger(), repo, checker)

			rec, err := svc.Create(context.Background(), tt.input)

			if tt.existsErr != nil {
				require.ErrorIs(t, err, tt.existsErr)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, *tt.wantParams, gotParams)
		})
	}
}

func TestService_Update_ContentTriState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       UpdateInput
		wantContent domain.Optional[string]
	}{
		{
			name:        "absent content leaves column untouched",
			input:       UpdateInput{Title: "T"},
			wantContent: domain.Optional[string]{},
		},
		{
			name:        "explicit null clears content",
			input:       UpdateInput{Title: "T", Content: domain.Null[string]()},
			wantContent: domain.Null[string](),
		},
		{
			name:        "whitespace-only value clears content",
			input:       UpdateInput{Title: "T", Content: domain.Some("   ")},
			wantContent: domain.Null[string](),
		},
		{
			name:        "value is trimmed and stored",
			input:       UpdateInput{Title: "T", Content: domain.Some("  notes  ")},
			wantContent: domain.Some("notes"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotParams domain.UpdateRecordParams
			repo := &recordRepoMock{
				UpdateFunc: func(ctx context.Context, id int64, params domain.UpdateRecordParams) (*domain.Record, error) {
					gotParams = params
					return &domain.Record{ID: id, Title: params.Title}, nil
				},
			}
			svc := NewService(testLogger(), repo, &categoryCheckerMock{})

			_, err := svc.Update(context.Background(), 1, tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantContent.Set, gotParams.Content.Set)
			if tt.wantContent.Value == nil {
				assert.Nil(t, gotParams.Content.Value)
			} else {
				require.NotNil(t, gotParams.Content.Value)
				assert.Equal(t, *tt.wantContent.Value, *gotParams.Content.Value)
			}
		})
	}
}

func TestService_Update_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &recordRepoMock{}, &categoryCheckerMock{})

	_, err := svc.Update(context.Background(), 1, UpdateInput{Title: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListPage_PassesFilter(t *testing.T) {
	t.Parallel()

	catID := int64(7)
	var gotFilter pgrecord.PageFilter
	repo := &recordRepoMock{
		ListPageFunc: func(ctx context.Context, f pgrecord.PageFilter) (*domain.RecordPage, error) {
			gotFilter = f
			return &domain.RecordPage{Records: []domain.Record{}}, nil
		},
	}
	svc := NewService(testLogger(), repo, &categoryCheckerMock{})

	_, err := svc.ListPage(context.Background(), 2, 20, &catID)
	require.NoError(t, err)
	assert.Equal(t, pgrecord.PageFilter{Page: 2, Limit: 20, CategoryID: &catID}, gotFilter)
}

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end string
		wantErr    bool
		check      func(t *testing.T, from, to *time.Time)
	}{
		{
			name: "both empty means open range",
			check: func(t *testing.T, from, to *time.Time) {
				assert.Nil(t, from)
				assert.Nil(t, to)
			},
		},
		{
			name:  "start only",
			start: "2026-01-15",
			check: func(t *testing.T, from, to *time.Time) {
				require.NotNil(t, from)
				assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local), *from)
				assert.Nil(t, to)
			},
		},
		{
			name: "end covers the whole day",
			end:  "2026-01-15",
			check: func(t *testing.T, from, to *time.Time) {
				require.NotNil(t, to)
				assert.Equal(t, time.Date(2026, 1, 15, 23, 59, 59, 0, time.Local), *to)
			},
		},
		{
			name:  "bounds use the server timezone",
			start: "2026-06-01",
			check: func(t *testing.T, from, to *time.Time) {
				require.NotNil(t, from)
				assert.Equal(t, time.Local, from.Location())
			},
		},
		{
			name:    "bad start format",
			start:   "15.01.2026",
			wantErr: true,
		},
		{
			name:    "bad end format",
			end:     "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, to, err := parseDateRange(tt.start, tt.end)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			tt.check(t, from, to)
		})
	}
}

func TestService_ListByDateRange_PropagatesBounds(t *testing.T) {
	t.Parallel()

	var gotFrom, gotTo *time.Time
	repo := &recordRepoMock{
		ListByDateRangeFunc: func(ctx context.Context, from, to *time.Time) ([]domain.Record, error) {
			gotFrom, gotTo = from, to
			return []domain.Record{}, nil
		},
	}
	svc := NewService(testLogger(), repo, &categoryCheckerMock{})

	_, err := svc.ListByDateRange(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	require.NotNil(t, gotFrom)
	require.NotNil(t, gotTo)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), *gotFrom)
	assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 0, time.Local), *gotTo)
}
