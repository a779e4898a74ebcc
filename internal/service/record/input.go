package record

import "github.com/okazimirov/learnlog-backend/internal/domain"

// CreateInput holds input for record creation.
type CreateInput struct {
	Title      string
	Content    *string
	CategoryID *int64
}

// UpdateInput holds input for a partial record update. Content and
// CategoryID are tri-state: absent, explicit null, or a value.
type UpdateInput struct {
	Title      string
	Content    domain.Optional[string]
	CategoryID domain.Optional[int64]
}
