package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/turbokart-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/turbokart-storefront/internal/services"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/memory"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	coinbaseMocks "github.com/aaravmahajanofficial/turbokart-storefront/pkg/coinbase/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutClient = "client-1"

var fixedNow = time.UnixMilli(1_717_171_234_567)

type checkoutFixture struct {
	checkout   service.CheckoutService
	carts      service.CartService
	store      *stubStorage
	mockClient *coinbaseMocks.MockClient
}

func setupCheckoutTest(t *testing.T) *checkoutFixture {
	t.Helper()

	store := &stubStorage{Storage: memory.New()}
	mockClient := coinbaseMocks.NewMockClient(t)
	carts := service.NewCartService(store, service.NewCatalogService(repository.NewProductRepo()), 0)
	gateway := service.NewChargeGateway(mockClient, testWebhookSecret)

	checkout := service.NewCheckoutService(carts, gateway, store, utils.NewValidator(), service.CheckoutConfig{
		PublicBaseURL: "https://turbokart.example/",
		Currency:      "USD",
		Now:           func() time.Time { return fixedNow },
	})

	return &checkoutFixture{checkout: checkout, carts: carts, store: store, mockClient: mockClient}
}

func validCustomer() *models.CustomerInfo {
	return &models.CustomerInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Address:   "12 Analytical Way",
		City:      "London",
		State:     "LDN",
		Zip:       "10001",
	}
}

func fillCart(t *testing.T, f *checkoutFixture) {
	t.Helper()

	req := &models.AddCartItemRequest{Slug: "nighthawk", Color: "Stealth Black", Tire: "Standard Grip"}
	for range 2 {
		_, err := f.carts.AddItem(t.Context(), checkoutClient, req)
		require.NoError(t, err)
	}
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "TK234567", service.OrderNumber(fixedNow))
	assert.Equal(t, "TK000042", service.OrderNumber(time.UnixMilli(5_000_042)))
}

func TestCheckout(t *testing.T) {

	t.Run("Success - Charge Created And Pending Order Saved", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		fillCart(t, f)

		var sent *models.ChargeRequest
		f.mockClient.EXPECT().CreateCharge(mock.Anything, mock.AnythingOfType("*models.ChargeRequest")).
			Run(func(_ context.Context, req *models.ChargeRequest) { sent = req }).
			Return(&models.Charge{ID: "charge_1", HostedURL: "https://commerce.coinbase.com/pay/ABC"}, nil).Once()

		// Act
		result, err := f.checkout.Checkout(t.Context(), checkoutClient, validCustomer())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "TK234567", result.OrderNumber)
		assert.Equal(t, "charge_1", result.ChargeID)
		assert.Equal(t, "https://commerce.coinbase.com/pay/ABC", result.RedirectURL)

		require.NotNil(t, sent)
		assert.Equal(t, "TurboKart Order #TK234567", sent.Name)
		assert.Equal(t, "Premium Go-Kart Purchase - 1 item(s)", sent.Description)
		assert.Equal(t, models.PricingTypeFixed, sent.PricingType)
		assert.Equal(t, &models.LocalPrice{Amount: "558", Currency: "USD"}, sent.LocalPrice)
		assert.Equal(t, "TK234567", sent.Metadata.OrderID)
		assert.Equal(t, "ada@example.com", sent.Metadata.CustomerEmail)
		assert.Equal(t, "Ada Lovelace", sent.Metadata.CustomerName)
		require.Len(t, sent.Metadata.Items, 1)
		assert.Equal(t, models.ChargeItem{
			Name:     "Nighthawk",
			Quantity: 2,
			Price:    "279",
			Color:    "Stealth Black",
			Tires:    "Standard Grip",
			AddOns:   []models.ChargeAddOn{},
		}, sent.Metadata.Items[0])
		assert.Equal(t, "https://turbokart.example/checkout/success?order=TK234567", sent.RedirectURL)
		assert.Equal(t, "https://turbokart.example/checkout", sent.CancelURL)

		var pending models.PendingOrder
		found, err := f.store.Get(t.Context(), storage.Key(storage.PendingOrderKeyPrefix, checkoutClient), &pending)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "TK234567", pending.OrderNumber)
		assert.Equal(t, "charge_1", pending.ChargeID)
		assert.Equal(t, models.Dollars(558), pending.Total)
		assert.Equal(t, "Ada", pending.CustomerInfo.FirstName)
		require.Len(t, pending.Items, 1)

		state, err := f.carts.GetCart(t.Context(), checkoutClient)
		require.NoError(t, err)
		assert.Len(t, state.Items, 1, "cart is kept until payment is confirmed")
	})

	t.Run("Success - Markup Is Stripped From Customer Fields", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		fillCart(t, f)
		customer := validCustomer()
		customer.FirstName = "<b>Ada</b>"
		customer.Address = "Tom & Jerry Lane<script>alert(1)</script>"

		var sent *models.ChargeRequest
		f.mockClient.EXPECT().CreateCharge(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req *models.ChargeRequest) { sent = req }).
			Return(&models.Charge{ID: "charge_1", HostedURL: "https://commerce.coinbase.com/pay/ABC"}, nil).Once()

		// Act
		_, err := f.checkout.Checkout(t.Context(), checkoutClient, customer)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", sent.Metadata.CustomerName)

		var pending models.PendingOrder
		_, err = f.store.Get(t.Context(), storage.Key(storage.PendingOrderKeyPrefix, checkoutClient), &pending)
		require.NoError(t, err)
		assert.Equal(t, "Tom & Jerry Lane", pending.CustomerInfo.Address)
	})

	t.Run("Failure - Blank Field Never Reaches Provider", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		fillCart(t, f)
		customer := validCustomer()
		customer.Zip = "   "

		// Act
		result, err := f.checkout.Checkout(t.Context(), checkoutClient, customer)

		// Assert
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, service.RequiredFieldsMessage, appErr.Message)
		f.mockClient.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)

		// Act
		result, err := f.checkout.Checkout(t.Context(), checkoutClient, validCustomer())

		// Assert
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Failure - Zero Total Never Reaches Provider", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		snapshot := models.CartState{Items: []models.CartLineItem{
			{ID: "free~kart", Name: "Nighthawk", UnitPrice: 0, Quantity: 1},
		}}
		require.NoError(t, f.store.Set(t.Context(), storage.Key(storage.CartKeyPrefix, checkoutClient), snapshot, 0))

		// Act
		result, err := f.checkout.Checkout(t.Context(), checkoutClient, validCustomer())

		// Assert
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		f.mockClient.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything)
	})

	failures := []struct {
		name   string
		charge *models.Charge
		err    error
	}{
		{name: "Failure - Provider Error", err: errors.New("503 from provider")},
		{name: "Failure - Charge Without Hosted URL", charge: &models.Charge{ID: "charge_1"}},
		{name: "Failure - Charge Without ID", charge: &models.Charge{HostedURL: "https://commerce.coinbase.com/pay/ABC"}},
	}

	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := setupCheckoutTest(t)
			fillCart(t, f)
			f.mockClient.EXPECT().CreateCharge(mock.Anything, mock.Anything).Return(tc.charge, tc.err).Once()

			// Act
			result, err := f.checkout.Checkout(t.Context(), checkoutClient, validCustomer())

			// Assert
			assert.Nil(t, result)
			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodePaymentInit, appErr.Code)
			assert.Equal(t, "Failed to initialize payment. Please try again.", appErr.Message)

			found, err := f.store.Get(t.Context(), storage.Key(storage.PendingOrderKeyPrefix, checkoutClient), &models.PendingOrder{})
			require.NoError(t, err)
			assert.False(t, found)

			state, err := f.carts.GetCart(t.Context(), checkoutClient)
			require.NoError(t, err)
			assert.Equal(t, 2, state.ItemCount)
		})
	}

	t.Run("Failure - Pending Order Not Saved", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		fillCart(t, f)
		f.mockClient.EXPECT().CreateCharge(mock.Anything, mock.Anything).
			Return(&models.Charge{ID: "charge_1", HostedURL: "https://commerce.coinbase.com/pay/ABC"}, nil).Once()
		f.store.setErr = errors.New("disk full")

		// Act
		result, err := f.checkout.Checkout(t.Context(), checkoutClient, validCustomer())

		// Assert
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePaymentInit, appErr.Code)
		assert.ErrorIs(t, err, f.store.setErr)
	})
}
