package storage

import (
	"context"
	"errors"
	"time"
)

// Storage is the durable key/value space holding per-client snapshots.
// Values are JSON encoded by the driver. A ttl <= 0 keeps the value until it
// is deleted.
type Storage interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// ErrCorruptValue wraps decode failures of a stored value. Callers treat it
// like a missing value.
var ErrCorruptValue = errors.New("stored value could not be decoded")

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix         = "turbokart-cart"
	PendingOrderKeyPrefix = "pendingOrder"
)
