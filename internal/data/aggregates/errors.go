package aggregates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorCode standardizes store failure semantics for the services layer.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeNotFound   ErrorCode = "not_found"
	CodeConflict   ErrorCode = "conflict"
	CodeRetryable  ErrorCode = "retryable"
	CodeInternal   ErrorCode = "internal"
)

// Error is the canonical store error wrapper.
type Error struct {
	Code  ErrorCode
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	switch {
	case op != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %v (%s)", op, e.Cause, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case e.Cause != nil:
		return fmt.Sprintf("%v (%s)", e.Cause, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: strings.TrimSpace(op), Cause: err}
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// IsConflict reports whether err is a unique-constraint violation, however the
// driver chose to surface it.
func IsConflict(err error) bool {
	return IsCode(MapError("conflict.check", err), CodeConflict)
}

// MapError maps driver and gorm failures into error codes.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(CodeConflict, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Wrap(CodeRetryable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return Wrap(CodeConflict, op, err) // unique_violation
		case "40001", "40P01", "55P03":
			return Wrap(CodeRetryable, op, err) // serialization/deadlock/lock_not_available
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "already exists"):
		return Wrap(CodeConflict, op, err)
	case strings.Contains(msg, "deadlock"),
		strings.Contains(msg, "serialization"),
		strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "timeout"):
		return Wrap(CodeRetryable, op, err)
	default:
		return Wrap(CodeInternal, op, err)
	}
}
