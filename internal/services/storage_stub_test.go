package service_test

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
)

// stubStorage wraps a real driver and lets a test fail individual calls.
type stubStorage struct {
	storage.Storage
	getErr    error
	setErr    error
	deleteErr error
	sets      []string
}

func (s *stubStorage) Get(ctx context.Context, key string, value any) (bool, error) {
	if s.getErr != nil {
		return false, s.getErr
	}

	return s.Storage.Get(ctx, key, value)
}

func (s *stubStorage) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.sets = append(s.sets, key)
	if s.setErr != nil {
		return s.setErr
	}

	return s.Storage.Set(ctx, key, value, ttl)
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}

	return s.Storage.Delete(ctx, key)
}
