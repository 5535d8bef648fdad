package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
)

// Persister writes a snapshot of the cart after every transition.
type Persister interface {
	Save(ctx context.Context, state models.CartState) error
}

type PersisterFunc func(ctx context.Context, state models.CartState) error

func (f PersisterFunc) Save(ctx context.Context, state models.CartState) error {
	return f(ctx, state)
}

type Listener func(state models.CartState)

// Store owns one cart. Transitions are applied in dispatch order, persisted,
// then announced to subscribers.
type Store struct {
	mu        sync.Mutex
	state     models.CartState
	persister Persister
	logger    *slog.Logger

	listenerMu sync.Mutex
	listeners  []subscription
	nextID     int
}

type subscription struct {
	id int
	fn Listener
}

func NewStore(initial models.CartState, persister Persister, logger *slog.Logger) *Store {

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		state:     Normalize(initial),
		persister: persister,
		logger:    logger,
	}
}

func (s *Store) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Reduce(s.state, noop{})
}

// Dispatch applies action and persists the result. A persistence failure is
// returned, but the in-memory state keeps the transition.
func (s *Store) Dispatch(ctx context.Context, action Action) (models.CartState, error) {

	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state

	var err error
	if s.persister != nil {
		if err = s.persister.Save(ctx, next); err != nil {
			s.logger.Error("Failed to persist cart", slog.String("error", err.Error()))
		}
	}
	s.mu.Unlock()

	s.notify(next)

	return next, err
}

// Subscribe registers fn for every later transition. The returned func
// removes it.
func (s *Store) Subscribe(fn Listener) func() {

	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool { return sub.id == id })
		s.listenerMu.Unlock()
	}
}

func (s *Store) notify(state models.CartState) {

	s.listenerMu.Lock()
	subs := slices.Clone(s.listeners)
	s.listenerMu.Unlock()

	for _, sub := range subs {
		sub.fn(state)
	}
}

func (s *Store) AddItem(ctx context.Context, item models.LineItemInput) (models.CartState, error) {
	return s.Dispatch(ctx, AddItem{Item: item})
}

func (s *Store) RemoveItem(ctx context.Context, id string) (models.CartState, error) {
	return s.Dispatch(ctx, RemoveItem{ID: id})
}

func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) (models.CartState, error) {
	return s.Dispatch(ctx, UpdateQuantity{ID: id, Quantity: quantity})
}

func (s *Store) Clear(ctx context.Context) (models.CartState, error) {
	return s.Dispatch(ctx, ClearCart{})
}

func (s *Store) Toggle(ctx context.Context) (models.CartState, error) {
	return s.Dispatch(ctx, ToggleCart{})
}

func (s *Store) Open(ctx context.Context) (models.CartState, error) {
	return s.Dispatch(ctx, OpenCart{})
}

func (s *Store) Close(ctx context.Context) (models.CartState, error) {
	return s.Dispatch(ctx, CloseCart{})
}

// Normalize drops items with a non-positive quantity, caps the rest at
// MaxLineQuantity and recomputes the derived fields of a restored snapshot.
func Normalize(state models.CartState) models.CartState {

	items := make([]models.CartLineItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Quantity <= 0 || item.ID == "" {
			continue
		}
		item.Quantity = min(item.Quantity, models.MaxLineQuantity)
		items = append(items, item)
	}

	state.Items = items

	return Reduce(state, noop{})
}

// Restore decodes a stored snapshot directly into the state shape. Empty or
// malformed data yields the empty cart.
func Restore(data []byte, logger *slog.Logger) models.CartState {

	if len(data) == 0 {
		return Empty()
	}

	var state models.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		if logger != nil {
			logger.Warn("Discarding unreadable cart snapshot", slog.String("error", err.Error()))
		}
		return Empty()
	}

	return Normalize(state)
}

// noop recomputes derived fields without changing anything else.
type noop struct{}

func (noop) isAction() {}

