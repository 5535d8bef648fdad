package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListProducts godoc
//	@Summary		List the go-kart line-up
//	@Tags			Products
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Product}
//	@Failure		500	{object}	response.APIResponse
//	@Router			/api/v1/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200		{object}	response.APIResponse{data=models.Product}
//	@Failure		404		{object}	response.APIResponse
//	@Router			/api/v1/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), slug)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("slug", slug), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
