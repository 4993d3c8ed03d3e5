// Package resilience provides fault tolerance patterns for the application.
//
// The circuitbreaker subpackage protects statement execution against a
// database that keeps failing: once the breaker opens, statements fail fast
// with gobreaker.ErrOpenState instead of waiting on a dead connection.
// Failed statements are never retried automatically.
//
// Usage Example:
//
//	cb := circuitbreaker.NewDB()
//	exec := db.NewExecutor(conn, db.WithCircuitBreaker(cb))
package resilience
