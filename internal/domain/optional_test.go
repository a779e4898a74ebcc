package domain

import (
	"encoding/json"
	"testing"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Content    Optional[string] `json:"content"`
		CategoryID Optional[int64]  `json:"categoryId"`
	}

	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, p payload)
	}{
		{
			name: "absent field stays unset",
			body: `{}`,
			check: func(t *testing.T, p payload) {
				if p.Content.Set {
					t.Error("content.Set = true, want false for absent field")
				}
			},
		},
		{
			name: "explicit null is set with nil value",
			body: `{"content": null}`,
			check: func(t *testing.T, p payload) {
				if !p.Content.Set {
					t.Fatal("content.Set = false, want true for explicit null")
				}
				if p.Content.Value != nil {
					t.Errorf("content.Value = %v, want nil", *p.Content.Value)
				}
			},
		},
		{
			name: "value is set with non-nil value",
			body: `{"content": "notes", "categoryId": 3}`,
			check: func(t *testing.T, p payload) {
				if !p.Content.Set || p.Content.Value == nil || *p.Content.Value != "notes" {
					t.Errorf("content = %+v, want set value %q", p.Content, "notes")
				}
				if !p.CategoryID.Set || p.CategoryID.Value == nil || *p.CategoryID.Value != 3 {
					t.Errorf("categoryId = %+v, want set value 3", p.CategoryID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.body, err)
			}
			tt.check(t, p)
		})
	}
}

func TestOptional_UnmarshalJSON_TypeMismatch(t *testing.T) {
	var o Optional[int64]
	if err := json.Unmarshal([]byte(`"not a number"`), &o); err == nil {
		t.Error("expected error for type mismatch, got nil")
	}
}

func TestOptional_Constructors(t *testing.T) {
	s := Some("x")
	if !s.Set || s.Value == nil || *s.Value != "x" {
		t.Errorf("Some() = %+v", s)
	}

	n := Null[string]()
	if !n.Set || n.Value != nil {
		t.Errorf("Null() = %+v", n)
	}
}
