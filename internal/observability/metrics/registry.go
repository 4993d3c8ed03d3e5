// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics track statement execution against the news database.
var (
	// DBStatementsTotal counts executed statements by target table and outcome.
	// status is "success" or "failure".
	DBStatementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_db_statements_total",
			Help: "Total number of executed database statements",
		},
		[]string{"table", "status"},
	)

	// DBStatementDuration measures statement execution time (begin to commit) in seconds.
	DBStatementDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_db_statement_duration_seconds",
			Help:    "Database statement duration in seconds, including commit",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"table"},
	)

	// DBStatementErrors counts failed statements by table and error class
	// (foreign_key, unique, not_null, check, no_connection, circuit_open, other).
	DBStatementErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_db_statement_errors_total",
			Help: "Total number of failed database statements by error class",
		},
		[]string{"table", "class"},
	)

	// DBConnectAttemptsTotal counts connection attempts by outcome.
	DBConnectAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_db_connect_attempts_total",
			Help: "Total number of database connection attempts",
		},
		[]string{"status"},
	)

	// DBCircuitOpen is 1 while the named database circuit breaker is open, 0 otherwise.
	DBCircuitOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "newsdesk_db_circuit_open",
			Help: "Whether the database circuit breaker is open (1) or not (0)",
		},
		[]string{"name"},
	)
)
