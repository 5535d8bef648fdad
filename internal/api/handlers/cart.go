package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validate}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Client-ID	header		string	false	"Browser profile id"
//	@Success		200			{object}	response.APIResponse{data=models.CartState}
//	@Failure		500			{object}	response.APIResponse
//	@Router			/api/v1/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), clientID)
		if err != nil {
			logger.Error("Failed to load cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a configured go-kart to the cart
//	@Description	Prices the selection from the catalog. Adding the same configuration again increments its quantity. The cart drawer opens.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Product selection"
//	@Success		200		{object}	response.APIResponse{data=models.CartState}
//	@Failure		400		{object}	response.APIResponse
//	@Failure		404		{object}	response.APIResponse
//	@Router			/api/v1/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), clientID, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.String("slug", req.Slug), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("slug", req.Slug), slog.Int("item_count", cart.ItemCount))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set the quantity of a cart line
//	@Description	Negative quantities are treated as zero; zero removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Line item id"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200			{object}	response.APIResponse{data=models.CartState}
//	@Failure		400			{object}	response.APIResponse
//	@Router			/api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), clientID, itemID, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update quantity", slog.String("item_id", itemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string	true	"Line item id"
//	@Success		200	{object}	response.APIResponse{data=models.CartState}
//	@Router			/api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), clientID, itemID)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.CartState}
//	@Router			/api/v1/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.Clear(r.Context(), clientID)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// SetDrawer godoc
//	@Summary		Open, close or toggle the cart drawer
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			drawer	body		models.CartDrawerRequest	true	"Drawer action"
//	@Success		200		{object}	response.APIResponse{data=models.CartState}
//	@Failure		400		{object}	response.APIResponse
//	@Router			/api/v1/cart/drawer [post]
func (h *CartHandler) SetDrawer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clientID, logger, ok := requireClient(w, r)
		if !ok {
			return
		}

		var req models.CartDrawerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.SetDrawer(r.Context(), clientID, req.Action)
		if err != nil {
			logger.Error("Failed to update drawer", slog.String("action", req.Action), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
