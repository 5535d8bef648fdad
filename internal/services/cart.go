package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
)

const (
	DrawerToggle = "toggle"
	DrawerOpen   = "open"
	DrawerClose  = "close"
)

type CartService interface {
	Open(ctx context.Context, clientID string) (*cart.Store, error)
	GetCart(ctx context.Context, clientID string) (*models.CartState, error)
	AddItem(ctx context.Context, clientID string, req *models.AddCartItemRequest) (*models.CartState, error)
	UpdateQuantity(ctx context.Context, clientID string, itemID string, quantity int) (*models.CartState, error)
	RemoveItem(ctx context.Context, clientID string, itemID string) (*models.CartState, error)
	Clear(ctx context.Context, clientID string) (*models.CartState, error)
	SetDrawer(ctx context.Context, clientID string, action string) (*models.CartState, error)
}

type cartService struct {
	store   storage.Storage
	catalog CatalogService
	ttl     time.Duration
}

func NewCartService(store storage.Storage, catalog CatalogService, ttl time.Duration) CartService {
	return &cartService{store: store, catalog: catalog, ttl: ttl}
}

// Open rehydrates the client's cart from its snapshot. The returned store
// writes the snapshot back after every transition.
func (s *cartService) Open(ctx context.Context, clientID string) (*cart.Store, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := storage.Key(storage.CartKeyPrefix, clientID)

	var raw json.RawMessage
	_, err := s.store.Get(ctx, key, &raw)
	if err != nil && !errors.Is(err, storage.ErrCorruptValue) {
		return nil, appErrors.StorageError("Failed to load cart").WithError(err)
	}

	if err != nil {
		logger.Warn("Discarding unreadable cart snapshot", slog.String("error", err.Error()))
		raw = nil
	}

	persister := cart.PersisterFunc(func(ctx context.Context, state models.CartState) error {
		return s.store.Set(ctx, key, state, s.ttl)
	})

	return cart.NewStore(cart.Restore(raw, logger), persister, logger), nil
}

// GetCart implements CartService.
func (s *cartService) GetCart(ctx context.Context, clientID string) (*models.CartState, error) {
	store, err := s.Open(ctx, clientID)
	if err != nil {
		return nil, err
	}

	state := store.State()
	return &state, nil
}

// AddItem implements CartService. Adding an item also opens the drawer.
func (s *cartService) AddItem(ctx context.Context, clientID string, req *models.AddCartItemRequest) (*models.CartState, error) {

	item, err := s.catalog.BuildLineItem(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, clientID, cart.AddItem{Item: item}, cart.OpenCart{})
}

// UpdateQuantity implements CartService.
func (s *cartService) UpdateQuantity(ctx context.Context, clientID string, itemID string, quantity int) (*models.CartState, error) {
	return s.apply(ctx, clientID, cart.UpdateQuantity{ID: itemID, Quantity: quantity})
}

// RemoveItem implements CartService.
func (s *cartService) RemoveItem(ctx context.Context, clientID string, itemID string) (*models.CartState, error) {
	return s.apply(ctx, clientID, cart.RemoveItem{ID: itemID})
}

// Clear implements CartService.
func (s *cartService) Clear(ctx context.Context, clientID string) (*models.CartState, error) {
	return s.apply(ctx, clientID, cart.ClearCart{})
}

// SetDrawer implements CartService.
func (s *cartService) SetDrawer(ctx context.Context, clientID string, action string) (*models.CartState, error) {

	var a cart.Action
	switch action {
	case DrawerToggle:
		a = cart.ToggleCart{}
	case DrawerOpen:
		a = cart.OpenCart{}
	case DrawerClose:
		a = cart.CloseCart{}
	default:
		return nil, appErrors.AddValidationError("action", "must be one of toggle, open, close")
	}

	return s.apply(ctx, clientID, a)
}

func (s *cartService) apply(ctx context.Context, clientID string, actions ...cart.Action) (*models.CartState, error) {

	store, err := s.Open(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var state models.CartState
	for _, action := range actions {
		if state, err = store.Dispatch(ctx, action); err != nil {
			return nil, appErrors.StorageError("Failed to save cart").WithError(err)
		}
	}

	return &state, nil
}
