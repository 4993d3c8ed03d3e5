package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
)

// Result describes the outcome of a statement run through Executor.Exec.
type Result struct {
	RowsAffected int64
}

// Executor runs one SQL statement per call, each in its own transaction
// that is committed before the call returns.
//
// Bind values are always sent to the server as parameters ($1..$N) and are
// never spliced into the statement text. Failures are logged once here and
// returned to the caller, classified with the package sentinels.
type Executor struct {
	db      *sql.DB
	breaker *circuitbreaker.CircuitBreaker
	logger  *slog.Logger
	tracer  trace.Tracer
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithCircuitBreaker makes every statement pass through cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) ExecutorOption {
	return func(e *Executor) { e.breaker = cb }
}

// WithLogger sets the logger. Without it the logger is taken from the
// call's context (logging.FromContext).
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// WithTracer overrides the tracer used for statement spans.
func WithTracer(t trace.Tracer) ExecutorOption {
	return func(e *Executor) { e.tracer = t }
}

// NewExecutor returns an executor bound to conn. A nil conn is allowed:
// every statement then fails with ErrNoConnection.
func NewExecutor(conn *sql.DB, opts ...ExecutorOption) *Executor {
	e := &Executor{db: conn}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exec executes query with the given bind values and commits it.
// With no bind values the statement text is executed as-is.
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	var res Result
	err := e.run(ctx, query, len(args), func(tx *sql.Tx) error {
		r, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		// pgx always reports the affected row count
		res.RowsAffected, _ = r.RowsAffected()
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// InsertReturningID executes an INSERT ... RETURNING id statement, commits it,
// and returns the generated id.
func (e *Executor) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := e.run(ctx, query, len(args), func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (e *Executor) run(ctx context.Context, query string, nargs int, fn func(*sql.Tx) error) (err error) {
	op, table := describeStatement(query)
	logger := e.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	ctx, span := tracing.StartSpan(ctx, e.tracer, "db."+strings.ToLower(op),
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", table),
		attribute.Int("db.args", nargs),
	)
	start := time.Now()
	defer func() {
		metrics.RecordStatement(table, err == nil, time.Since(start))
		tracing.EndSpan(span, err)
	}()

	if e.db == nil {
		err = ErrNoConnection
	} else if e.breaker != nil {
		err = e.breaker.Run(func() error {
			return e.inTx(ctx, logger, fn)
		})
	} else {
		err = e.inTx(ctx, logger, fn)
	}

	if err != nil {
		err = ClassifyError(err)
		metrics.RecordStatementError(table, ErrorClass(err))
		logger.ErrorContext(ctx, "query failed",
			slog.String("operation", op),
			slog.String("table", table),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err))
		return err
	}

	logger.InfoContext(ctx, "query successful",
		slog.String("operation", op),
		slog.String("table", table),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// inTx runs fn inside a transaction and commits it. Any failure rolls back.
func (e *Executor) inTx(ctx context.Context, logger *slog.Logger, fn func(*sql.Tx) error) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.WarnContext(ctx, "rollback failed", slog.Any("error", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// describeStatement extracts the SQL verb and target table from a statement
// for logs, metrics and spans. The table is empty when it cannot be determined.
func describeStatement(query string) (op, table string) {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "EXEC", ""
	}
	op = strings.ToUpper(fields[0])

	var marker string
	switch op {
	case "INSERT":
		marker = "INTO"
	case "DELETE", "SELECT":
		marker = "FROM"
	case "UPDATE":
		if len(fields) > 1 {
			return op, cleanIdent(fields[1])
		}
		return op, ""
	default:
		return op, ""
	}

	for i := 1; i < len(fields)-1; i++ {
		if strings.EqualFold(fields[i], marker) {
			return op, cleanIdent(fields[i+1])
		}
	}
	return op, ""
}

// cleanIdent strips quoting and a trailing column list from a table token.
func cleanIdent(tok string) string {
	if i := strings.IndexByte(tok, '('); i >= 0 {
		tok = tok[:i]
	}
	return strings.Trim(tok, `"`+"`;")
}
