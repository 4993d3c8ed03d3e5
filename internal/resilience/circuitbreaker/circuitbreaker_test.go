package circuitbreaker

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"

	"newsdesk/internal/observability/metrics"
)

// testDBBreaker mirrors DBConfig with a short cooldown and a unique name.
func testDBBreaker(t *testing.T, tripAfter uint32, cooldown time.Duration) *CircuitBreaker {
	t.Helper()
	cfg := DBConfig()
	cfg.Name = t.Name()
	cfg.TripAfter = tripAfter
	cfg.Cooldown = cooldown
	return New(cfg)
}

func refused() error { return syscall.ECONNREFUSED }

func TestRun_ReturnsStatementError(t *testing.T) {
	cb := testDBBreaker(t, 5, time.Minute)
	fk := &pgconn.PgError{Code: "23503"}

	if err := cb.Run(func() error { return nil }); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := cb.Run(func() error { return fk }); !errors.Is(err, fk) {
		t.Fatalf("expected the statement error unchanged, got %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed, got %v", cb.State())
	}
}

func TestRun_OpensAfterConsecutiveConnectionFailures(t *testing.T) {
	cb := testDBBreaker(t, 3, time.Minute)

	for i := 0; i < 2; i++ {
		_ = cb.Run(refused)
	}
	if cb.IsOpen() {
		t.Fatal("breaker opened before TripAfter failures")
	}

	_ = cb.Run(refused)
	if !cb.IsOpen() {
		t.Fatalf("expected Open after 3 failures, got %v", cb.State())
	}

	called := false
	err := cb.Run(func() error { called = true; return nil })
	if called {
		t.Error("statement must not run while the breaker is open")
	}
	if !IsOpenStateError(err) {
		t.Errorf("expected open-state error, got %v", err)
	}
}

func TestRun_SuccessResetsFailureStreak(t *testing.T) {
	cb := testDBBreaker(t, 3, time.Minute)

	// 失敗 2 回 → 成功 → 失敗 2 回 では連続失敗にならない
	_ = cb.Run(refused)
	_ = cb.Run(refused)
	_ = cb.Run(func() error { return nil })
	_ = cb.Run(refused)
	_ = cb.Run(refused)

	if cb.IsOpen() {
		t.Fatal("a successful statement must reset the consecutive failure count")
	}
}

func TestRun_ConstraintViolationsNeverTrip(t *testing.T) {
	cb := testDBBreaker(t, 2, time.Minute)
	unique := &pgconn.PgError{Code: "23505"}

	for i := 0; i < 10; i++ {
		_ = cb.Run(func() error { return unique })
	}
	if cb.IsOpen() {
		t.Fatal("constraint violations must not open the breaker")
	}
}

func TestRun_RecoversThroughHalfOpen(t *testing.T) {
	cb := testDBBreaker(t, 1, 50*time.Millisecond)

	_ = cb.Run(refused)
	if !cb.IsOpen() {
		t.Fatal("expected Open")
	}

	time.Sleep(80 * time.Millisecond)
	if cb.State() != gobreaker.StateHalfOpen {
		t.Fatalf("expected HalfOpen after cooldown, got %v", cb.State())
	}

	if err := cb.Run(func() error { return nil }); err != nil {
		t.Fatalf("probe statement failed: %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after a successful probe, got %v", cb.State())
	}
}

func TestRun_FailedProbeReopens(t *testing.T) {
	cb := testDBBreaker(t, 1, 50*time.Millisecond)

	_ = cb.Run(refused)
	time.Sleep(80 * time.Millisecond)
	_ = cb.Run(refused)

	if !cb.IsOpen() {
		t.Fatalf("expected Open after failed probe, got %v", cb.State())
	}
}

func TestNew_NilIsSuccessfulCountsEveryError(t *testing.T) {
	cb := New(Config{Name: t.Name(), TripAfter: 1, Cooldown: time.Minute})

	_ = cb.Run(func() error { return &pgconn.PgError{Code: "23503"} })

	if !cb.IsOpen() {
		t.Fatal("without IsSuccessful every error is a failure")
	}
}

func TestNew_ZeroTripAfter(t *testing.T) {
	cb := New(Config{Name: t.Name(), Cooldown: time.Minute})

	_ = cb.Run(refused)

	if !cb.IsOpen() {
		t.Fatal("zero TripAfter should open on the first failure")
	}
}

func TestNew_ExportsState(t *testing.T) {
	cb := testDBBreaker(t, 1, time.Minute)
	gauge := metrics.DBCircuitOpen.WithLabelValues(t.Name())

	if got := testutil.ToFloat64(gauge); got != 0 {
		t.Fatalf("expected gauge 0 for a new breaker, got %v", got)
	}

	_ = cb.Run(refused)

	if got := testutil.ToFloat64(gauge); got != 1 {
		t.Errorf("expected gauge 1 while open, got %v", got)
	}
}
