package domain

import (
	"errors"
	"testing"
)

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("title", "must not be empty")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(%v, ErrValidation) = false, want true", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	single := NewValidationError("title", "must not be empty")
	if got, want := single.Error(), "validation: title: must not be empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	multi := &ValidationError{Errors: []FieldError{
		{Field: "title", Message: "must not be empty"},
		{Field: "categoryId", Message: "must be positive"},
	}}
	if got, want := multi.Error(), "validation: 2 errors"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
