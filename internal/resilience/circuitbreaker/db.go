package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

// integrityViolationClass is the SQLSTATE class for constraint violations.
const integrityViolationClass = "23"

// DBConfig returns the breaker settings for the news database: open after
// 5 consecutive failed statements, probe again after 30 seconds.
// Constraint violations and caller cancellations do not count as failures;
// they say nothing about the health of the database.
func DBConfig() Config {
	return Config{
		Name:           "database",
		TripAfter:      5,
		Cooldown:       30 * time.Second,
		HalfOpenProbes: 1,
		Window:         time.Minute,
		IsSuccessful:   isHealthyDBOutcome,
	}
}

// NewDB creates a circuit breaker with DBConfig.
func NewDB() *CircuitBreaker {
	return New(DBConfig())
}

// IsOpenStateError reports whether err was produced by an open (or saturated half-open) breaker.
func IsOpenStateError(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func isHealthyDBOutcome(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityViolationClass
}
