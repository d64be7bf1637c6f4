package core

import (
	"context"
	"time"
)

// TimeProvider abstracts wall-clock access so persistence timestamps and
// query timeouts stay testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
