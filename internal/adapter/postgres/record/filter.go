package record

// PageFilter defines parameters for paginating the record list.
type PageFilter struct {
	// Page is 1-based. Non-positive values fall back to 1.
	Page int

	// Limit is the page size. Non-positive values fall back to 10,
	// oversized values are clamped.
	Limit int

	// CategoryID filters by exact category match when non-nil.
	CategoryID *int64
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalize applies defaults and clamps values.
func (f *PageFilter) normalize() {
	if f.Page <= 0 {
		f.Page = defaultPage
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}

// offset converts the 1-based page into a row offset.
func (f *PageFilter) offset() int {
	return (f.Page - 1) * f.Limit
}
