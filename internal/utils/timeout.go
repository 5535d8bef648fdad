package utils

import (
	"context"
	"time"
)

const DefaultStorageTimeout = 3 * time.Second

// WithStorageTimeout bounds a single storage round trip. A non-positive
// timeout falls back to DefaultStorageTimeout.
func WithStorageTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}

	return context.WithTimeout(ctx, timeout)
}
