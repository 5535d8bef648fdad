package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
	"github.com/aaravmahajanofficial/turbokart-storefront/pkg/coinbase"
)

// PaymentHandler serves the gateway endpoints. They answer with bare
// {"charge": ...} / {"error": ...} bodies instead of the API envelope.
type PaymentHandler struct {
	gateway service.ChargeGateway
}

func NewPaymentHandler(gateway service.ChargeGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// CreateCharge godoc
//	@Summary	Create a hosted charge
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Param		charge	body		models.ChargeRequest	true	"Charge"
//	@Success	200		{object}	models.CreateChargeResponse
//	@Failure	400		{object}	models.GatewayError
//	@Failure	500		{object}	models.GatewayError
//	@Router		/checkout/create-charge [post]
func (h *PaymentHandler) CreateCharge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ChargeRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Error("Error creating charge", slog.String("error", err.Error()))
			response.GatewayError(w, http.StatusInternalServerError, "Failed to create charge")
			return
		}

		charge, err := h.gateway.CreateCharge(r.Context(), &req)
		if err != nil {
			logger.Error("Error creating charge", slog.String("error", err.Error()))
			writeGatewayError(w, err, "Failed to create charge")
			return
		}

		response.WriteJson(w, http.StatusOK, models.CreateChargeResponse{Charge: charge})
	}
}

// GetCharge godoc
//	@Summary	Fetch a charge
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path		string	true	"Charge id"
//	@Success	200	{object}	models.CreateChargeResponse
//	@Failure	500	{object}	models.GatewayError
//	@Router		/checkout/charges/{id} [get]
func (h *PaymentHandler) GetCharge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		charge, err := h.gateway.GetCharge(r.Context(), id)
		if err != nil {
			logger.Error("Error fetching charge", slog.String("charge_id", id), slog.String("error", err.Error()))
			writeGatewayError(w, err, "Failed to fetch charge")
			return
		}

		response.WriteJson(w, http.StatusOK, models.CreateChargeResponse{Charge: charge})
	}
}

// HandleCoinbaseWebhook godoc
//	@Summary	Receive a payment provider event
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Param		X-CC-Webhook-Signature	header		string	true	"Hex HMAC-SHA256 of the raw body"
//	@Success	200						{object}	models.WebhookAck
//	@Failure	400						{object}	models.GatewayError	"Missing signature"
//	@Failure	401						{object}	models.GatewayError	"Invalid signature"
//	@Failure	500						{object}	models.GatewayError	"Secret not configured or processing failed"
//	@Router		/webhooks/coinbase [post]
func (h *PaymentHandler) HandleCoinbaseWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// the signature covers the exact bytes, so the body is read raw
		payload, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxBodyBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.GatewayError(w, http.StatusInternalServerError, "Webhook processing failed")
			return
		}

		event, err := h.gateway.ProcessWebhook(r.Context(), payload, r.Header.Get(coinbase.SignatureHeader))
		if err != nil {
			writeGatewayError(w, err, "Webhook processing failed")
			return
		}

		logger.Info("Webhook processed", slog.String("event_id", event.ID), slog.String("event_type", event.Type))
		response.WriteJson(w, http.StatusOK, models.WebhookAck{Received: true})
	}
}

// writeGatewayError keeps the status of an AppError; its message is shown
// only for client errors, the fallback otherwise.
func writeGatewayError(w http.ResponseWriter, err error, fallback string) {

	appErr, ok := appErrors.IsAppError(err)
	if !ok {
		response.GatewayError(w, http.StatusInternalServerError, fallback)
		return
	}

	message := fallback
	if appErr.StatusCode < http.StatusInternalServerError || appErr.Code == appErrors.ErrCodeConfiguration {
		message = appErr.Message
	}

	response.GatewayError(w, appErr.StatusCode, message)
}

