package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/resilience/circuitbreaker"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
	// ForeignKeyViolationCode indicates a foreign key violation.
	ForeignKeyViolationCode = "23503"
	// NotNullViolationCode indicates a NOT NULL constraint violation.
	NotNullViolationCode = "23502"
	// CheckViolationCode indicates a check constraint violation.
	CheckViolationCode = "23514"
)

// Error classes used as the "class" metric label.
const (
	ClassForeignKey   = "foreign_key"
	ClassUnique       = "unique"
	ClassNotNull      = "not_null"
	ClassCheck        = "check"
	ClassNoConnection = "no_connection"
	ClassCircuitOpen  = "circuit_open"
	ClassCanceled     = "canceled"
	ClassOther        = "other"
)

// AsPgError unwraps err into the server-side PostgreSQL error, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ClassifyError tags a statement error with one of the package sentinels.
// The original error is kept in the chain. Context cancellation, open-breaker
// errors and errors that already carry a sentinel are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := AsPgError(err); ok {
		switch pe.Code {
		case ForeignKeyViolationCode:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case UniqueViolationCode:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case NotNullViolationCode:
			return fmt.Errorf("%w: %w", ErrNotNullViolation, err)
		case CheckViolationCode:
			return fmt.Errorf("%w: %w", ErrCheckViolation, err)
		}
	}

	switch {
	case errors.Is(err, ErrNoConnection),
		errors.Is(err, ErrStatement),
		errors.Is(err, ErrForeignKeyViolation),
		errors.Is(err, ErrUniqueViolation),
		errors.Is(err, ErrNotNullViolation),
		errors.Is(err, ErrCheckViolation),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		circuitbreaker.IsOpenStateError(err):
		return err
	}

	return fmt.Errorf("%w: %w", ErrStatement, err)
}

// ErrorClass maps an error to its metric class label.
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, ErrForeignKeyViolation):
		return ClassForeignKey
	case errors.Is(err, ErrUniqueViolation):
		return ClassUnique
	case errors.Is(err, ErrNotNullViolation):
		return ClassNotNull
	case errors.Is(err, ErrCheckViolation):
		return ClassCheck
	case errors.Is(err, ErrNoConnection):
		return ClassNoConnection
	case circuitbreaker.IsOpenStateError(err):
		return ClassCircuitOpen
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ClassCanceled
	default:
		return ClassOther
	}
}
