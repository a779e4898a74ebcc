package domain

import "time"

// Record is a titled learning note with optional content and category.
type Record struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    *string   `db:"content" json:"content"`
	CategoryID *int64    `db:"category_id" json:"category_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// CategoryName is resolved via LEFT JOIN at read time.
	// Nil when the record has no category.
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
}

// RecordPage is one offset-based slice of the record list.
type RecordPage struct {
	Records      []Record
	TotalRecords int
	CurrentPage  int
	TotalPages   int
	Limit        int
}

// CreateRecordParams holds input for Record creation.
type CreateRecordParams struct {
	Title      string
	Content    *string
	CategoryID *int64
}

// UpdateRecordParams holds input for a partial Record update.
// Title is always required; Content and CategoryID follow tri-state
// semantics: absent fields are left untouched, explicit nulls clear the
// stored value.
type UpdateRecordParams struct {
	Title      string
	Content    Optional[string]
	CategoryID Optional[int64]
}

// DeletedRecord identifies a removed row for confirmation messaging.
type DeletedRecord struct {
	ID    int64
	Title string
}
