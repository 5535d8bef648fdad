package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// memoryStorage keeps snapshots in process. Values are stored encoded so a
// caller never shares memory with what it wrote.
type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func New() storage.Storage {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) storage.Storage {
	return &memoryStorage{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (m *memoryStorage) Get(_ context.Context, key string, value any) (bool, error) {

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(e.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal value for key %s: %w: %w", key, storage.ErrCorruptValue, err)
	}

	return true, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryStorage) Ping(_ context.Context) error {
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}
