// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the application's database metrics:
//   - statements executed per table and outcome
//   - statement duration (begin to commit)
//   - failed statements per error class
//   - connection attempts
//
// All metrics are registered with the Prometheus default registry via promauto.
//
// Example usage:
//
//	import "newsdesk/internal/observability/metrics"
//
//	start := time.Now()
//	err := insert()
//	metrics.RecordStatement("categories", err == nil, time.Since(start))
package metrics
