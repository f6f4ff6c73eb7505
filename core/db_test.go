package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCheckOrdering(t *testing.T) {
	allowed := []string{"id", "name"}

	tests := []struct {
		name     string
		ordering []DBOrdering
		wantErr  string
	}{
		{name: "none"},
		{name: "allowed", ordering: []DBOrdering{{Field: "name"}, {Field: "id", Ascending: true}}},
		{name: "unknown", ordering: []DBOrdering{{Field: "name"}, {Field: "name; DROP TABLE students"}}, wantErr: `cannot order by "name; DROP TABLE students"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOrdering(tt.ordering, allowed...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("CheckOrdering() unexpected error = %v", err)
				}
				return
			}
			vErr, ok := errors.Cause(err).(*ValidationError)
			if !ok {
				t.Fatalf("CheckOrdering() error = %T, want *ValidationError", err)
			}
			if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "ordering" || vErr.Fields[0].Error != tt.wantErr {
				t.Errorf("CheckOrdering() fields = %+v, want ordering: %s", vErr.Fields, tt.wantErr)
			}
		})
	}
}

func TestDBOrdering_String(t *testing.T) {
	if got := (DBOrdering{Field: "name", Ascending: true}).String(); got != "name ASC" {
		t.Errorf("String() = %q, want %q", got, "name ASC")
	}
	if got := (DBOrdering{Field: "id"}).String(); got != "id DESC" {
		t.Errorf("String() = %q, want %q", got, "id DESC")
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := NewNotFoundError("thing not found")
	if !IsNotFound(errors.Wrap(notFound, "getting thing")) {
		t.Error("IsNotFound() = false for a wrapped NotFoundError")
	}
	if IsNotFound(NewConflictError("dup")) {
		t.Error("IsNotFound() = true for a ConflictError")
	}
}
