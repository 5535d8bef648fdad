package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/testutils"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testClientID = "6f1c3c1e-8a4b-4c43-9d1e-3b0e8f6f7a10"

func decodeCart(t *testing.T, body []byte) *models.CartState {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var cart models.CartState
	require.NoError(t, json.Unmarshal(data, &cart))

	return &cart
}

func sampleCart() *models.CartState {
	return &models.CartState{
		Items: []models.CartLineItem{
			{ID: "nighthawk~Stealth Black~Standard Grip", Name: "Nighthawk", UnitPrice: models.Dollars(279), Quantity: 2},
		},
		Total:     models.Dollars(558),
		ItemCount: 2,
		IsOpen:    true,
	}
}

func TestCartHandler_GetCart(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("GetCart", mock.Anything, testClientID).Return(sampleCart(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		cart := decodeCart(t, rr.Body.Bytes())
		assert.Equal(t, models.Dollars(558), cart.Total)
		assert.Equal(t, 2, cart.ItemCount)
	})

	t.Run("Failure - Missing Client Identity", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("GetCart", mock.Anything, testClientID).
			Return(nil, appErrors.StorageError("Failed to load cart")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeStorage)
	})
}

func TestCartHandler_AddItem(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		reqBody := models.AddCartItemRequest{Slug: "nighthawk", Color: "Stealth Black", Tire: "Standard Grip"}

		mockCartService.On("AddItem", mock.Anything, testClientID, &reqBody).Return(sampleCart(), nil).Once()

		body, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeCart(t, rr.Body.Bytes()).IsOpen)
	})

	t.Run("Failure - Missing Selection Fields", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"slug":"nighthawk"}`)), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Request Body", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{invalid json`)), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("AddItem", mock.Anything, testClientID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"slug":"hoverboard","color":"Red","tire":"Slick"}`)), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	itemID := "nighthawk~Stealth Black~Standard Grip"

	t.Run("Success - Negative Quantity Is Forwarded", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("UpdateQuantity", mock.Anything, testClientID, itemID, -3).
			Return(&models.CartState{Items: []models.CartLineItem{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/x",
			bytes.NewReader([]byte(`{"quantity":-3}`)), testClientID, map[string]string{"id": itemID})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decodeCart(t, rr.Body.Bytes()).Items)
	})

	t.Run("Success - Zero Quantity Is Accepted", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("UpdateQuantity", mock.Anything, testClientID, itemID, 0).
			Return(&models.CartState{Items: []models.CartLineItem{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/x",
			bytes.NewReader([]byte(`{"quantity":0}`)), testClientID, map[string]string{"id": itemID})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Quantity Above Limit", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/x",
			bytes.NewReader([]byte(`{"quantity":400000000000000}`)), testClientID, map[string]string{"id": itemID})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
		mockCartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Quantity", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items/x",
			bytes.NewReader([]byte(`{}`)), testClientID, map[string]string{"id": itemID})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
	})
}

func TestCartHandler_RemoveAndClear(t *testing.T) {

	t.Run("Success - Remove Item", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("RemoveItem", mock.Anything, testClientID, "line-1").
			Return(&models.CartState{Items: []models.CartLineItem{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/line-1", nil, testClientID,
			map[string]string{"id": "line-1"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Clear Cart", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("Clear", mock.Anything, testClientID).
			Return(&models.CartState{Items: []models.CartLineItem{}, IsOpen: true}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		cart := decodeCart(t, rr.Body.Bytes())
		assert.Empty(t, cart.Items)
		assert.True(t, cart.IsOpen)
	})
}

func TestCartHandler_SetDrawer(t *testing.T) {

	t.Run("Success - Toggle", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())
		mockCartService.On("SetDrawer", mock.Anything, testClientID, "toggle").
			Return(&models.CartState{Items: []models.CartLineItem{}, IsOpen: true}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/drawer",
			bytes.NewReader([]byte(`{"action":"toggle"}`)), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.SetDrawer().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeCart(t, rr.Body.Bytes()).IsOpen)
	})

	t.Run("Failure - Unknown Action", func(t *testing.T) {
		// Arrange
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService, utils.NewValidator())

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/drawer",
			bytes.NewReader([]byte(`{"action":"flip"}`)), testClientID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.SetDrawer().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "must be one of")
	})
}
