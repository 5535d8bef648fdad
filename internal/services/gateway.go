package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/pkg/coinbase"
	"golang.org/x/sync/singleflight"
)

const (
	unhandledEventLabel = "unhandled"

	// chargeLookupTimeout bounds a shared status lookup, which outlives the
	// request that started it.
	chargeLookupTimeout = 15 * time.Second
)

type ChargeGateway interface {
	CreateCharge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error)
	GetCharge(ctx context.Context, id string) (*models.Charge, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookEvent, error)
}

type chargeGateway struct {
	client        coinbase.Client
	webhookSecret string
	lookups       singleflight.Group
}

// NewChargeGateway wraps the provider client. A nil client is allowed so the
// webhook endpoint can still answer; charge calls then fail with a
// configuration error.
func NewChargeGateway(client coinbase.Client, webhookSecret string) ChargeGateway {
	return &chargeGateway{client: client, webhookSecret: webhookSecret}
}

// CreateCharge implements ChargeGateway.
func (g *chargeGateway) CreateCharge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error) {

	logger := middleware.LoggerFromContext(ctx)

	if req == nil || req.Name == "" || req.LocalPrice == nil || req.Metadata == nil {
		return nil, appErrors.ValidationError("Missing required fields")
	}

	if g.client == nil {
		return nil, appErrors.ConfigurationError("Payment provider is not configured")
	}

	if req.PricingType == "" {
		req.PricingType = models.PricingTypeFixed
	}

	charge, err := g.client.CreateCharge(ctx, req)
	if err != nil {
		logger.Error("Failed to create charge",
			slog.String("order_id", req.Metadata.OrderID),
			slog.String("amount", req.LocalPrice.Amount),
			slog.String("currency", req.LocalPrice.Currency),
			slog.String("error", err.Error()),
		)
		return nil, appErrors.ThirdPartyError("Failed to create charge").WithError(err)
	}

	logger.Info("Charge created",
		slog.String("order_id", req.Metadata.OrderID),
		slog.String("charge_id", charge.ID),
	)

	return charge, nil
}

// GetCharge implements ChargeGateway. Concurrent lookups of the same charge
// share one provider call; a caller that goes away stops waiting without
// cancelling the call for the others.
func (g *chargeGateway) GetCharge(ctx context.Context, id string) (*models.Charge, error) {

	logger := middleware.LoggerFromContext(ctx)

	if id == "" {
		return nil, appErrors.ValidationError("Charge ID is required")
	}

	if g.client == nil {
		return nil, appErrors.ConfigurationError("Payment provider is not configured")
	}

	flightCtx := context.WithoutCancel(ctx)
	lookup := g.lookups.DoChan(id, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(flightCtx, chargeLookupTimeout)
		defer cancel()

		return g.client.GetCharge(lookupCtx, id)
	})

	select {
	case <-ctx.Done():
		logger.Warn("Charge lookup abandoned by caller", slog.String("charge_id", id), slog.String("error", ctx.Err().Error()))
		return nil, appErrors.ThirdPartyError("Failed to fetch charge").WithError(ctx.Err())

	case res := <-lookup:
		if res.Err != nil {
			logger.Error("Failed to fetch charge", slog.String("charge_id", id), slog.String("error", res.Err.Error()))
			return nil, appErrors.ThirdPartyError("Failed to fetch charge").WithError(res.Err)
		}

		return res.Val.(*models.Charge), nil
	}
}

// ProcessWebhook authenticates and logs a provider callback. It never changes
// stored state; the confirmation page polls the charge instead.
func (g *chargeGateway) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookEvent, error) {

	logger := middleware.LoggerFromContext(ctx)

	if signature == "" {
		return nil, appErrors.BadRequestError("Missing signature")
	}

	if g.webhookSecret == "" {
		logger.Error("Webhook received but no shared secret is configured")
		return nil, appErrors.ConfigurationError("Webhook secret not configured")
	}

	if !VerifyWebhookSignature(payload, signature, g.webhookSecret) {
		logger.Warn("Rejected webhook with invalid signature")
		return nil, appErrors.UnauthorizedError("Invalid signature")
	}

	event, err := ParseWebhookEvent(payload)
	if err != nil {
		logger.Error("Failed to parse webhook payload", slog.String("error", err.Error()))
		return nil, appErrors.InternalError("Webhook processing failed").WithError(err)
	}

	eventLogger := logger.With(
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("charge_id", event.ChargeID()),
	)

	switch event.Type {
	case models.EventChargeCreated:
		eventLogger.Info("Charge created")
	case models.EventChargeConfirmed:
		eventLogger.Info("Payment confirmed")
	case models.EventChargeFailed:
		eventLogger.Warn("Payment failed")
	case models.EventChargeDelayed:
		eventLogger.Info("Payment delayed")
	case models.EventChargePending:
		eventLogger.Info("Payment pending")
	case models.EventChargeResolved:
		eventLogger.Info("Charge resolved")
	default:
		eventLogger.Info("Unhandled webhook event")
		metrics.RecordWebhookEvent(unhandledEventLabel)
		return event, nil
	}

	metrics.RecordWebhookEvent(event.Type)

	return event, nil
}

// VerifyWebhookSignature reports whether signature authenticates payload. Any
// failure, including a missing secret or malformed signature, is false.
func VerifyWebhookSignature(payload []byte, signature, secret string) (ok bool) {

	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	return coinbase.VerifySignature(payload, signature, secret) == nil
}

// ParseWebhookEvent decodes a callback body. The provider sends the event
// wrapped in {"event": {...}}; a bare event is accepted too. An event without
// a type is an error.
func ParseWebhookEvent(payload []byte) (*models.WebhookEvent, error) {

	var wrapped struct {
		Event *models.WebhookEvent `json:"event"`
	}

	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid webhook JSON: %w", err)
	}

	event := wrapped.Event
	if event == nil {
		event = &models.WebhookEvent{}
		if err := json.Unmarshal(payload, event); err != nil {
			return nil, fmt.Errorf("invalid webhook JSON: %w", err)
		}
	}

	if event.Type == "" {
		return nil, errors.New("webhook event has no type")
	}

	return event, nil
}
