// Package circuitbreaker stops statements from reaching a database that keeps
// failing. It is built on github.com/sony/gobreaker: after TripAfter
// consecutive unhealthy outcomes the breaker opens and every statement fails
// fast with gobreaker.ErrOpenState until Cooldown has passed.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"newsdesk/internal/observability/metrics"
)

// Config describes a breaker guarding one database.
type Config struct {
	// Name labels logs and the newsdesk_db_circuit_open gauge.
	Name string

	// TripAfter is the number of consecutive failed statements that opens the breaker.
	TripAfter uint32

	// Cooldown is how long the breaker stays open before letting probe statements through.
	Cooldown time.Duration

	// HalfOpenProbes is how many statements may run while half-open.
	// One failing probe reopens the breaker.
	HalfOpenProbes uint32

	// Window clears the consecutive-failure count periodically while closed.
	// Zero never clears it.
	Window time.Duration

	// IsSuccessful decides whether a returned error counts against the breaker.
	// nil means every non-nil error is a failure.
	IsSuccessful func(err error) bool
}

// CircuitBreaker guards statement execution.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

// New builds a breaker from cfg. A zero TripAfter is treated as 1.
func New(cfg Config) *CircuitBreaker {
	tripAfter := cfg.TripAfter
	if tripAfter == 0 {
		tripAfter = 1
	}

	metrics.RecordCircuitState(cfg.Name, false)
	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        cfg.Name,
			MaxRequests: cfg.HalfOpenProbes,
			Interval:    cfg.Window,
			Timeout:     cfg.Cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= tripAfter
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				metrics.RecordCircuitState(name, to == gobreaker.StateOpen)
				slog.Warn("database circuit breaker state changed",
					slog.String("circuit", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
			IsSuccessful: cfg.IsSuccessful,
		}),
	}
}

// Run calls fn unless the breaker is open and returns fn's error unchanged.
// While open it returns gobreaker.ErrOpenState (or ErrTooManyRequests when
// the half-open probes are used up) without calling fn.
func (cb *CircuitBreaker) Run(fn func() error) error {
	_, err := cb.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// IsOpen reports whether statements are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
