// Package summary asks the configured text-generation endpoint for an
// AI-written report over a date range of learning records.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/okazimirov/learnlog-backend/internal/adapter/provider/llm"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

type recordLister interface {
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Record, error)
}

type completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// DateRange echoes the requested range back to the caller.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Result is a generated summary plus its metadata.
type Result struct {
	Summary     string
	RecordCount int
	DateRange   DateRange
}

// Service generates summaries. The remote call is one blocking round trip
// with no retry; the only cancellation path is the request context.
type Service struct {
	records recordLister
	llm     completer
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new summary service.
func NewService(logger *slog.Logger, records recordLister, llm completer) *Service {
	return &Service{
		records: records,
		llm:     llm,
		now:     time.Now,
		log:     logger.With("service", "summary"),
	}
}

// Summarize fetches the records in the range, sends them to the model, and
// returns the model's report prefixed with a generated header.
// Returns domain.ErrNotFound when the range holds no records and
// domain.ErrExternalService when the remote call fails.
func (s *Service) Summarize(ctx context.Context, startDate, endDate string) (*Result, error) {
	records, err := s.records.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in range to summarize: %w", domain.ErrNotFound)
	}

	corpus := buildCorpus(records)

	s.log.InfoContext(ctx, "requesting summary",
		slog.Int("records", len(records)),
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
	)

	text, err := s.llm.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(corpus)},
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Summary:     s.reportHeader(len(records), startDate, endDate) + text,
		RecordCount: len(records),
		DateRange:   DateRange{StartDate: startDate, EndDate: endDate},
	}, nil
}

// reportHeader renders the metadata block prepended to the model output.
func (s *Service) reportHeader(count int, startDate, endDate string) string {
	rangeText := "all time"
	if startDate != "" {
		end := endDate
		if end == "" {
			end = "today"
		}
		rangeText = fmt.Sprintf("%s to %s", startDate, end)
	}

	return fmt.Sprintf(`# Learning Records AI Summary

**Generated**: %s
**Records**: %d
**Date range**: %s

---

`, s.now().Format(timeLayout), count, rangeText)
}
