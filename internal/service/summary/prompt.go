package summary

import (
	"fmt"
	"strings"

	"github.com/okazimirov/learnlog-backend/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// systemPrompt asks the model for the fixed five-section report layout.
const systemPrompt = `You are a professional learning assistant who analyzes and summarizes learning records. Based on the learning records the user provides, generate a structured summary report.

The report must contain the following sections:
1. **Overview** - overall summary of the learning activity
2. **Main Topics** - the main subjects and knowledge points covered
3. **Progress** - how the learning was distributed over time and how frequent it was
4. **Knowledge Structure** - how the studied material fits together
5. **Suggestions** - improvement suggestions based on the records

Write in clear, professional language and format the report as Markdown.`

// buildCorpus concatenates records into the plain-text corpus sent to the
// model: time, title, and content per record, separated by rules. Records
// without a creation timestamp are skipped, mirroring the exporter.
func buildCorpus(records []domain.Record) string {
	var b strings.Builder
	for _, rec := range records {
		if rec.CreatedAt.IsZero() {
			continue
		}
		content := "(no content)"
		if rec.Content != nil && *rec.Content != "" {
			content = *rec.Content
		}
		fmt.Fprintf(&b, "Time: %s\nTitle: %s\nContent: %s\n\n---\n\n",
			rec.CreatedAt.Format(timeLayout), rec.Title, content)
	}
	return b.String()
}

// buildUserPrompt wraps the corpus in the instructional request.
func buildUserPrompt(corpus string) string {
	return fmt.Sprintf(`Please generate a summary report for the following learning records:

%s

Analyze these learning records and produce a structured learning summary report.`, corpus)
}
