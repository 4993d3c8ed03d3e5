package metrics

import "time"

// unknownTable labels statements whose target table could not be determined.
const unknownTable = "unknown"

// RecordStatement records the outcome and duration of one executed statement.
func RecordStatement(table string, success bool, duration time.Duration) {
	if table == "" {
		table = unknownTable
	}
	DBStatementsTotal.WithLabelValues(table, statusLabel(success)).Inc()
	DBStatementDuration.WithLabelValues(table).Observe(duration.Seconds())
}

// RecordStatementError records a failed statement under its error class.
func RecordStatementError(table, class string) {
	if table == "" {
		table = unknownTable
	}
	DBStatementErrors.WithLabelValues(table, class).Inc()
}

// RecordConnectAttempt records the result of opening the database.
func RecordConnectAttempt(success bool) {
	DBConnectAttemptsTotal.WithLabelValues(statusLabel(success)).Inc()
}

// RecordCircuitState records whether the breaker name is open.
func RecordCircuitState(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	DBCircuitOpen.WithLabelValues(name).Set(v)
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
