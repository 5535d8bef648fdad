package models

import (
	"encoding/json"
	"time"
)

const PricingTypeFixed = "fixed_price"

type LocalPrice struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ChargeAddOn and ChargeItem carry prices as decimal strings in major units.
type ChargeAddOn struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ChargeItem struct {
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Price    string        `json:"price"`
	Color    string        `json:"color"`
	Tires    string        `json:"tires"`
	AddOns   []ChargeAddOn `json:"addOns"`
}

// ChargeMetadata is echoed back by the provider unmodified. OrderID is the
// only key correlating a charge with the storefront's pending order.
type ChargeMetadata struct {
	OrderID       string       `json:"order_id"`
	CustomerEmail string       `json:"customer_email"`
	CustomerName  string       `json:"customer_name"`
	Items         []ChargeItem `json:"items,omitempty"`
}

// ChargeRequest is the body of a create-charge call. LocalPrice and Metadata
// are pointers so an absent field can be told apart from an empty one.
type ChargeRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PricingType string          `json:"pricing_type,omitempty"`
	LocalPrice  *LocalPrice     `json:"local_price,omitempty"`
	Metadata    *ChargeMetadata `json:"metadata,omitempty"`
	RedirectURL string          `json:"redirect_url,omitempty"`
	CancelURL   string          `json:"cancel_url,omitempty"`
}

const (
	TimelineStatusNew        = "NEW"
	TimelineStatusPending    = "PENDING"
	TimelineStatusCompleted  = "COMPLETED"
	TimelineStatusExpired    = "EXPIRED"
	TimelineStatusUnresolved = "UNRESOLVED"
	TimelineStatusResolved   = "RESOLVED"
	TimelineStatusCanceled   = "CANCELED"

	PaymentStatusNew       = "NEW"
	PaymentStatusPending   = "PENDING"
	PaymentStatusConfirmed = "CONFIRMED"
	PaymentStatusFailed    = "FAILED"
)

type ChargeTimelineEntry struct {
	Time    time.Time `json:"time"`
	Status  string    `json:"status"`
	Context string    `json:"context,omitempty"`
}

type ChargePayment struct {
	Network       string          `json:"network,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        string          `json:"status"`
	Value         json.RawMessage `json:"value,omitempty"`
}

type Charge struct {
	ID          string                `json:"id"`
	Code        string                `json:"code,omitempty"`
	Name        string                `json:"name,omitempty"`
	Description string                `json:"description,omitempty"`
	HostedURL   string                `json:"hosted_url"`
	PricingType string                `json:"pricing_type,omitempty"`
	Pricing     json.RawMessage       `json:"pricing,omitempty"`
	Metadata    *ChargeMetadata       `json:"metadata,omitempty"`
	Timeline    []ChargeTimelineEntry `json:"timeline"`
	Payments    []ChargePayment       `json:"payments"`
	RedirectURL string                `json:"redirect_url,omitempty"`
	CancelURL   string                `json:"cancel_url,omitempty"`
	CreatedAt   *time.Time            `json:"created_at,omitempty"`
	ExpiresAt   *time.Time            `json:"expires_at,omitempty"`
}

const (
	EventChargeCreated   = "charge:created"
	EventChargeConfirmed = "charge:confirmed"
	EventChargeFailed    = "charge:failed"
	EventChargeDelayed   = "charge:delayed"
	EventChargePending   = "charge:pending"
	EventChargeResolved  = "charge:resolved"
)

// WebhookEvent is the event carried by a provider callback. Data holds the
// charge the event refers to.
type WebhookEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	APIVersion string          `json:"api_version,omitempty"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// ChargeID extracts the id of the charge carried in Data.
func (e *WebhookEvent) ChargeID() string {
	var ref struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	}

	if len(e.Data) == 0 || json.Unmarshal(e.Data, &ref) != nil {
		return ""
	}

	if ref.ID != "" {
		return ref.ID
	}

	return ref.Code
}

type CreateChargeResponse struct {
	Charge *Charge `json:"charge"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type GatewayError struct {
	Error string `json:"error"`
}
