// Package resilience provides fault tolerance patterns for the
// application's storage layer.
//
// The package supports:
//   - Circuit breakers guarding database calls
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.NewDBCircuitBreaker(pool)
//	repo := postgres.NewProductRepo(cb)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return pool.PingContext(ctx)
//	})
package resilience
