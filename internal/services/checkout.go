package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/telemetry"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel/attribute"
)

const RequiredFieldsMessage = "Please fill in all required fields"

type CheckoutService interface {
	Checkout(ctx context.Context, clientID string, info *models.CustomerInfo) (*models.CheckoutResult, error)
}

type CheckoutConfig struct {
	PublicBaseURL   string
	Currency        string
	PendingOrderTTL time.Duration
	Now             func() time.Time
}

type checkoutService struct {
	carts     CartService
	gateway   ChargeGateway
	store     storage.Storage
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	cfg       CheckoutConfig
}

func NewCheckoutService(carts CartService, gateway ChargeGateway, store storage.Storage, validate *validator.Validate, cfg CheckoutConfig) CheckoutService {

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return &checkoutService{
		carts:     carts,
		gateway:   gateway,
		store:     store,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
		cfg:       cfg,
	}
}

// Checkout creates a hosted charge for the client's cart and records the
// pending order. The cart itself is left as it is until payment is confirmed.
func (s *checkoutService) Checkout(ctx context.Context, clientID string, info *models.CustomerInfo) (*models.CheckoutResult, error) {

	ctx, span := telemetry.Tracer().Start(ctx, "checkout.Checkout")
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	if info == nil || s.validate.Struct(info) != nil {
		metrics.RecordCheckout(metrics.CheckoutResultValidation)
		return nil, appErrors.ValidationError(RequiredFieldsMessage)
	}

	state, err := s.carts.GetCart(ctx, clientID)
	if err != nil {
		metrics.RecordCheckout(metrics.CheckoutResultFailed)
		return nil, err
	}

	if len(state.Items) == 0 {
		metrics.RecordCheckout(metrics.CheckoutResultValidation)
		return nil, appErrors.ValidationError("Your cart is empty")
	}

	if state.Total <= 0 {
		logger.Error("Refusing checkout with a non-positive cart total", slog.String("total", state.Total.String()))
		metrics.RecordCheckout(metrics.CheckoutResultValidation)
		return nil, appErrors.ValidationError("Your cart total is invalid")
	}

	customer := s.sanitize(*info)
	orderNumber := OrderNumber(s.cfg.Now())
	span.SetAttributes(attribute.String("order_number", orderNumber), attribute.Int("cart_items", len(state.Items)))

	charge, err := s.gateway.CreateCharge(ctx, s.chargeRequest(orderNumber, customer, state))
	if err != nil {
		logger.Error("Checkout failed to create charge",
			slog.String("order_number", orderNumber),
			slog.String("error", err.Error()),
		)
		metrics.RecordCheckout(metrics.CheckoutResultFailed)
		return nil, appErrors.PaymentInitError().WithError(err)
	}

	if charge == nil || charge.ID == "" || charge.HostedURL == "" {
		logger.Error("Charge response is missing id or hosted url", slog.String("order_number", orderNumber))
		metrics.RecordCheckout(metrics.CheckoutResultFailed)
		return nil, appErrors.PaymentInitError()
	}

	pending := &models.PendingOrder{
		OrderNumber:  orderNumber,
		ChargeID:     charge.ID,
		CustomerInfo: customer,
		Items:        state.Items,
		Total:        state.Total,
		CreatedAt:    s.cfg.Now().UTC(),
	}

	if err := s.store.Set(ctx, storage.Key(storage.PendingOrderKeyPrefix, clientID), pending, s.cfg.PendingOrderTTL); err != nil {
		logger.Error("Failed to save pending order",
			slog.String("order_number", orderNumber),
			slog.String("charge_id", charge.ID),
			slog.String("error", err.Error()),
		)
		metrics.RecordCheckout(metrics.CheckoutResultFailed)
		return nil, appErrors.PaymentInitError().WithError(err)
	}

	logger.Info("Checkout started",
		slog.String("order_number", orderNumber),
		slog.String("charge_id", charge.ID),
		slog.String("amount", state.Total.String()),
	)
	metrics.RecordCheckout(metrics.CheckoutResultSuccess)

	return &models.CheckoutResult{
		OrderNumber: orderNumber,
		ChargeID:    charge.ID,
		RedirectURL: charge.HostedURL,
	}, nil
}

func (s *checkoutService) chargeRequest(orderNumber string, customer models.CustomerInfo, state *models.CartState) *models.ChargeRequest {

	items := make([]models.ChargeItem, 0, len(state.Items))
	for _, item := range state.Items {
		addOns := make([]models.ChargeAddOn, 0, len(item.AddOns))
		for _, a := range item.AddOns {
			addOns = append(addOns, models.ChargeAddOn{Name: a.Name, Price: a.Price.String()})
		}

		items = append(items, models.ChargeItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice.String(),
			Color:    item.Color,
			Tires:    item.Tires,
			AddOns:   addOns,
		})
	}

	return &models.ChargeRequest{
		Name:        "TurboKart Order #" + orderNumber,
		Description: fmt.Sprintf("Premium Go-Kart Purchase - %d item(s)", len(state.Items)),
		PricingType: models.PricingTypeFixed,
		LocalPrice: &models.LocalPrice{
			Amount:   state.Total.String(),
			Currency: s.cfg.Currency,
		},
		Metadata: &models.ChargeMetadata{
			OrderID:       orderNumber,
			CustomerEmail: customer.Email,
			CustomerName:  customer.FullName(),
			Items:         items,
		},
		RedirectURL: s.cfg.PublicBaseURL + "/checkout/success?order=" + url.QueryEscape(orderNumber),
		CancelURL:   s.cfg.PublicBaseURL + "/checkout",
	}
}

// sanitize strips markup from the form values; plain text survives unescaped.
func (s *checkoutService) sanitize(info models.CustomerInfo) models.CustomerInfo {

	clean := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
	}

	return models.CustomerInfo{
		FirstName: clean(info.FirstName),
		LastName:  clean(info.LastName),
		Email:     clean(info.Email),
		Address:   clean(info.Address),
		City:      clean(info.City),
		State:     clean(info.State),
		Zip:       clean(info.Zip),
	}
}

// OrderNumber is "TK" followed by the last six digits of the Unix
// millisecond time.
func OrderNumber(now time.Time) string {
	return fmt.Sprintf("TK%06d", now.UnixMilli()%1_000_000)
}
