package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/okazimirov/learnlog-backend/internal/domain"
	"github.com/okazimirov/learnlog-backend/internal/service/record"
	"github.com/okazimirov/learnlog-backend/internal/service/summary"
)

// recordService defines the minimal interface needed by RecordHandler.
type recordService interface {
	ListAll(ctx context.Context) ([]domain.Record, error)
	ListPage(ctx context.Context, page, limit int, categoryID *int64) (*domain.RecordPage, error)
	Get(ctx context.Context, id int64) (*domain.Record, error)
	Create(ctx context.Context, input record.CreateInput) (*domain.Record, error)
	Update(ctx context.Context, id int64, input record.UpdateInput) (*domain.Record, error)
	Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Record, error)
}

// markdownRenderer turns a record sequence into one Markdown document.
type markdownRenderer interface {
	Render(records []domain.Record) string
}

// summaryService defines the minimal interface needed for the summary route.
type summaryService interface {
	Summarize(ctx context.Context, startDate, endDate string) (*summary.Result, error)
}

// RecordHandler serves learning-record REST endpoints, including the
// Markdown export and the AI summary.
type RecordHandler struct {
	svc      recordService
	exporter markdownRenderer
	summary  summaryService
	log      *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, exporter markdownRenderer, summarySvc summaryService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		svc:      svc,
		exporter: exporter,
		summary:  summarySvc,
		log:      logger.With("handler", "record"),
	}
}

type createRecordRequest struct {
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"category_id"`
}

type updateRecordRequest struct {
	Title      string                  `json:"title"`
	Content    domain.Optional[string] `json:"content"`
	CategoryID domain.Optional[int64]  `json:"category_id"`
}

type recordPageResponse struct {
	Records      []domain.Record `json:"records"`
	TotalRecords int             `json:"totalRecords"`
	CurrentPage  int             `json:"currentPage"`
	TotalPages   int             `json:"totalPages"`
	Limit        int             `json:"limit"`
}

type summaryResponse struct {
	Success     bool              `json:"success"`
	Summary     string            `json:"summary"`
	RecordCount int               `json:"recordCount"`
	DateRange   summary.DateRange `json:"dateRange"`
}

// List handles GET /api/records. Without query parameters it returns the
// full joined list as an array; any of page/limit/categoryId switches to the
// paged envelope. Non-numeric or non-positive values fall back to defaults.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("page") && !q.Has("limit") && !q.Has("categoryId") {
		records, err := h.svc.ListAll(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	var categoryID *int64
	if raw := q.Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "categoryId must be an integer")
			return
		}
		categoryID = &id
	}

	pageResult, err := h.svc.ListPage(r.Context(), page, limit, categoryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, recordPageResponse{
		Records:      pageResult.Records,
		TotalRecords: pageResult.TotalRecords,
		CurrentPage:  pageResult.CurrentPage,
		TotalPages:   pageResult.TotalPages,
		Limit:        pageResult.Limit,
	})
}

// Create handles POST /api/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Create(r.Context(), record.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Update handles PUT /api/records/{id}. Fields absent from the body are left
// untouched; explicit nulls clear content/category.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Update(r.Context(), id, record.UpdateInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("record %q deleted", deleted.Title),
	})
}

// Export handles GET /api/records/export?startDate&endDate. Responds with a
// Markdown document, or 404 when the range holds nothing to export.
func (h *RecordHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.svc.ListByDateRange(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "no records in range to export")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.exporter.Render(records))) //nolint:errcheck
}

// Summary handles GET /api/records/summary?startDate&endDate.
func (h *RecordHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.summary.Summarize(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Success:     true,
		Summary:     result.Summary,
		RecordCount: result.RecordCount,
		DateRange:   result.DateRange,
	})
}

// recordID parses the {id} path value; writes a 400 and returns false when
// it is not an integer.
func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "record id must be an integer")
		return 0, false
	}
	return id, true
}
