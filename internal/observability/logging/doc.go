// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats (LOG_FORMAT)
//   - Configurable log levels (LOG_LEVEL)
//   - Run ID tagging for command invocations
//   - Context-aware logging
//
// Example usage:
//
//	import "newsdesk/internal/observability/logging"
//
//	func main() {
//	    logger, runID := logging.WithRunID(logging.NewLogger())
//	    logger.Info("seed started", slog.String("run_id", runID))
//	}
package logging
