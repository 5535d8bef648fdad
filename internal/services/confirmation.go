package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
)

type ConfirmationService interface {
	Confirm(ctx context.Context, clientID string, orderNumber string) (*models.Confirmation, error)
}

type confirmationService struct {
	store    storage.Storage
	gateway  ChargeGateway
	carts    CartService
	notifier OrderNotifier
}

func NewConfirmationService(store storage.Storage, gateway ChargeGateway, carts CartService, notifier OrderNotifier) ConfirmationService {

	if notifier == nil {
		notifier = NoopNotifier{}
	}

	return &confirmationService{store: store, gateway: gateway, carts: carts, notifier: notifier}
}

// Confirm resolves the payment status of the client's pending order with a
// single charge lookup. A confirmed order is removed so a reload reports
// not_found.
func (s *confirmationService) Confirm(ctx context.Context, clientID string, orderNumber string) (*models.Confirmation, error) {

	logger := middleware.LoggerFromContext(ctx)

	if orderNumber == "" {
		return s.result(models.ConfirmationNotFound, nil), nil
	}

	key := storage.Key(storage.PendingOrderKeyPrefix, clientID)

	var order models.PendingOrder
	found, err := s.store.Get(ctx, key, &order)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptValue) {
			return nil, appErrors.StorageError("Failed to load order").WithError(err)
		}
		logger.Warn("Discarding unreadable pending order", slog.String("error", err.Error()))
		found = false
	}

	if !found {
		return s.result(models.ConfirmationNotFound, nil), nil
	}

	if order.ChargeID == "" {
		return s.result(models.ConfirmationPending, &order), nil
	}

	charge, err := s.gateway.GetCharge(ctx, order.ChargeID)
	if err != nil {
		logger.Error("Failed to check payment status",
			slog.String("order_number", order.OrderNumber),
			slog.String("charge_id", order.ChargeID),
			slog.String("error", err.Error()),
		)
		return s.result(models.ConfirmationFailed, &order), nil
	}

	status := ResolvePaymentStatus(charge)
	if status == models.ConfirmationConfirmed {
		s.complete(ctx, clientID, key, &order)
	}

	return s.result(status, &order), nil
}

func (s *confirmationService) complete(ctx context.Context, clientID string, key string, order *models.PendingOrder) {

	logger := middleware.LoggerFromContext(ctx).With(
		slog.String("order_number", order.OrderNumber),
		slog.String("charge_id", order.ChargeID),
	)

	if err := s.store.Delete(ctx, key); err != nil {
		logger.Error("Failed to remove pending order", slog.String("error", err.Error()))
	}

	if _, err := s.carts.Clear(ctx, clientID); err != nil {
		logger.Error("Failed to clear cart after payment", slog.String("error", err.Error()))
	}

	if err := s.notifier.OrderConfirmed(ctx, order); err != nil {
		logger.Error("Failed to send order confirmation", slog.String("error", err.Error()))
	}

	logger.Info("Payment confirmed")
}

func (s *confirmationService) result(status models.ConfirmationState, order *models.PendingOrder) *models.Confirmation {
	metrics.RecordConfirmation(string(status))

	return &models.Confirmation{Status: status, Message: status.Message(), Order: order}
}

// ResolvePaymentStatus maps a charge to confirmed when any payment is
// CONFIRMED or the timeline reached COMPLETED, and to pending otherwise.
func ResolvePaymentStatus(charge *models.Charge) models.ConfirmationState {

	if charge == nil {
		return models.ConfirmationPending
	}

	if slices.ContainsFunc(charge.Payments, func(p models.ChargePayment) bool {
		return p.Status == models.PaymentStatusConfirmed
	}) {
		return models.ConfirmationConfirmed
	}

	if slices.ContainsFunc(charge.Timeline, func(e models.ChargeTimelineEntry) bool {
		return e.Status == models.TimelineStatusCompleted
	}) {
		return models.ConfirmationConfirmed
	}

	return models.ConfirmationPending
}
