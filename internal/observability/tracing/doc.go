// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the global tracer named "newsdesk". Without a
// registered TracerProvider the spans are no-ops, so callers never need to
// check whether tracing is configured.
//
// Example usage:
//
//	import "newsdesk/internal/observability/tracing"
//
//	func insert(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, nil, "db.insert")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ... execute statement ...
//	}
package tracing
