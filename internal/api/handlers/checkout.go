package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService     service.CheckoutService
	confirmationService service.ConfirmationService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, confirmationService service.ConfirmationService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, confirmationService: confirmationService}
}

// Checkout godoc
//	@Summary		Start payment for the current cart
//	@Description	Creates a hosted crypto charge and records the pending order. The browser must then navigate to redirect_url.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		models.CustomerInfo	true	"Shipping details"
//	@Success		200			{object}	response.APIResponse{data=models.CheckoutResult}
//	@Failure		400			{object}	response.APIResponse	"Missing field or empty cart"
//	@Failure		502			{object}	response.APIResponse	"Payment could not be initialized"
//	@Router			/api/v1/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		// field checks run in the service
		var req models.CustomerInfo
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.ValidationError(service.RequiredFieldsMessage).WithError(err))
			return
		}

		result, err := h.checkoutService.Checkout(r.Context(), clientID, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout initialized", slog.String("order_number", result.OrderNumber))
		response.Success(w, http.StatusOK, result)
	}
}

// Confirmation godoc
//	@Summary		Resolve the payment status of the pending order
//	@Description	One status lookup per call; call again to refresh.
//	@Tags			Checkout
//	@Produce		json
//	@Param			order	query		string	true	"Order number from the success redirect"
//	@Success		200		{object}	response.APIResponse{data=models.Confirmation}
//	@Router			/api/v1/checkout/confirmation [get]
func (h *CheckoutHandler) Confirmation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		orderNumber := r.URL.Query().Get("order")

		confirmation, err := h.confirmationService.Confirm(r.Context(), clientID, orderNumber)
		if err != nil {
			logger.Error("Failed to resolve confirmation", slog.String("order", orderNumber), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Confirmation resolved",
			slog.String("order", orderNumber),
			slog.String("status", string(confirmation.Status)),
		)
		response.Success(w, http.StatusOK, confirmation)
	}
}
