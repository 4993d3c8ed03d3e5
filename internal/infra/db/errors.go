package db

import "errors"

// Sentinel errors returned by Open and the Executor.
// Driver errors stay in the chain: use errors.As with *pgconn.PgError for details.
var (
	// ErrConnect indicates that the database could not be opened or pinged.
	ErrConnect = errors.New("database connection failed")

	// ErrNoConnection indicates that the executor has no connection handle.
	ErrNoConnection = errors.New("no database connection")

	// ErrForeignKeyViolation indicates a referenced row does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrUniqueViolation indicates a unique constraint rejected the row.
	ErrUniqueViolation = errors.New("unique violation")

	// ErrNotNullViolation indicates a required column was NULL.
	ErrNotNullViolation = errors.New("not null violation")

	// ErrCheckViolation indicates a CHECK constraint rejected the row.
	ErrCheckViolation = errors.New("check violation")

	// ErrStatement wraps any other statement execution failure
	// (syntax errors, lost connection, closed handle, ...).
	ErrStatement = errors.New("statement failed")
)
