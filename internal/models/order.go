package models

import "time"

// CustomerInfo is the shipping form. Every field only needs to be present.
type CustomerInfo struct {
	FirstName string `json:"first_name" validate:"required,notblank"`
	LastName  string `json:"last_name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,notblank"`
	Address   string `json:"address" validate:"required,notblank"`
	City      string `json:"city" validate:"required,notblank"`
	State     string `json:"state" validate:"required,notblank"`
	Zip       string `json:"zip" validate:"required,notblank"`
}

func (c CustomerInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// PendingOrder is the snapshot written right before the buyer is sent to the
// hosted payment page. At most one exists per client.
type PendingOrder struct {
	OrderNumber  string         `json:"orderNumber"`
	ChargeID     string         `json:"chargeId,omitempty"`
	CustomerInfo CustomerInfo   `json:"customerInfo"`
	Items        []CartLineItem `json:"items"`
	Total        Money          `json:"total"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type CheckoutResult struct {
	OrderNumber string `json:"order_number"`
	ChargeID    string `json:"charge_id"`
	RedirectURL string `json:"redirect_url"`
}

// ConfirmationState is the payment status shown on the confirmation page.
// NotFound is terminal: there is no pending order to reconcile.
type ConfirmationState string

const (
	ConfirmationNotFound  ConfirmationState = "not_found"
	ConfirmationPending   ConfirmationState = "pending"
	ConfirmationConfirmed ConfirmationState = "confirmed"
	ConfirmationFailed    ConfirmationState = "failed"
)

func (s ConfirmationState) Message() string {
	switch s {
	case ConfirmationConfirmed:
		return "Your cryptocurrency payment has been confirmed and your order is being processed."
	case ConfirmationPending:
		return "Your payment is being processed. This usually takes a few minutes for cryptocurrency transactions."
	case ConfirmationFailed:
		return "There was an issue with your payment. Please contact support if you believe this is an error."
	default:
		return "We couldn't find your order information."
	}
}

type Confirmation struct {
	Status  ConfirmationState `json:"status"`
	Message string            `json:"message"`
	Order   *PendingOrder     `json:"order,omitempty"`
}
