package postgres

import (
	"context"
	"database/sql"
)

// Executor is the subset of *sql.DB the repositories use. A plain pool
// satisfies it, as does the database circuit breaker wrapper.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
