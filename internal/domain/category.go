package domain

// Category is a named tag grouping learning records.
// Names are unique; categories are never renamed and deletion is not exposed
// through the API (the schema still clears dangling references via
// ON DELETE SET NULL).
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
