// Package export renders learning records into a single Markdown document.
package export

import (
	"log/slog"
	"strings"

	"github.com/okazimirov/learnlog-backend/internal/domain"
)

const (
	timeLayout    = "2006-01-02 15:04:05"
	documentTitle = "# Learning Records Export"
	emptyContent  = "(no content)"
	recordDivider = "---"
)

// Formatter renders record sequences to Markdown. Rendering is deterministic:
// the same input sequence always yields the same document.
type Formatter struct {
	log *slog.Logger
}

// NewFormatter creates a Markdown formatter.
func NewFormatter(logger *slog.Logger) *Formatter {
	return &Formatter{log: logger.With("component", "export")}
}

// Render produces one Markdown document: a top-level heading, then per record
// a second-level heading with the formatted timestamp and title, the content
// (or a placeholder), and a horizontal rule. Records without a creation
// timestamp are skipped with a warning; the schema should make that
// impossible.
func (f *Formatter) Render(records []domain.Record) string {
	var b strings.Builder
	b.WriteString(documentTitle)
	b.WriteString("\n\n")

	for _, rec := range records {
		if rec.CreatedAt.IsZero() {
			f.log.Warn("skipping record without created_at", slog.Int64("id", rec.ID))
			continue
		}

		b.WriteString("## ")
		b.WriteString(rec.CreatedAt.Format(timeLayout))
		b.WriteString(" - ")
		b.WriteString(rec.Title)
		b.WriteString("\n\n")

		content := emptyContent
		if rec.Content != nil && *rec.Content != "" {
			content = *rec.Content
		}
		b.WriteString(content)
		b.WriteString("\n\n")
		b.WriteString(recordDivider)
		b.WriteString("\n\n")
	}

	return b.String()
}
