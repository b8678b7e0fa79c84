package aggregates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestMapError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"duplicated key", gorm.ErrDuplicatedKey, CodeConflict},
		{"wrapped duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), CodeConflict},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, CodeConflict},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, CodeRetryable},
		{"sqlite unique text", errors.New("UNIQUE constraint failed: customers.email"), CodeConflict},
		{"not found", gorm.ErrRecordNotFound, CodeNotFound},
		{"canceled", context.Canceled, CodeRetryable},
		{"other", errors.New("connection refused"), CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError("op", tt.err)
			if !IsCode(got, tt.want) {
				t.Fatalf("expected %q, got %q (%v)", tt.want, CodeOf(got), got)
			}
		})
	}
}

func TestMapError_PassthroughAndNil(t *testing.T) {
	if MapError("op", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	in := Wrap(CodeRetryable, "op", errors.New("boom"))
	if out := MapError("other", in); out != in {
		t.Fatalf("expected passthrough of mapped error")
	}
}

func TestIsConflict(t *testing.T) {
	if !IsConflict(gorm.ErrDuplicatedKey) {
		t.Fatalf("expected conflict")
	}
	if IsConflict(errors.New("boom")) {
		t.Fatalf("unexpected conflict")
	}
}
