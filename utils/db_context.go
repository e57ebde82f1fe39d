package utils

import (
	"context"
	"time"
)

// DefaultQueryTimeout bounds ordinary statements.
const DefaultQueryTimeout = 30 * time.Second

// SlowQueryTimeout bounds table-wide recompute statements, which scan
// every KPI row and can run long on large portfolios.
const SlowQueryTimeout = 60 * time.Second

// QueryContext derives a timeout-bounded context for a database statement.
// A nil parent falls back to the background context.
func QueryContext(parentCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	return context.WithTimeout(parentCtx, timeout)
}

// DefaultQueryContext bounds a statement with DefaultQueryTimeout.
func DefaultQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return QueryContext(parentCtx, DefaultQueryTimeout)
}

// SlowQueryContext bounds a statement with SlowQueryTimeout.
func SlowQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return QueryContext(parentCtx, SlowQueryTimeout)
}
