package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/aaravmahajanofficial/turbokart-storefront/pkg/sendgrid"
)

// OrderNotifier tells the buyer their payment went through.
type OrderNotifier interface {
	OrderConfirmed(ctx context.Context, order *models.PendingOrder) error
}

// NoopNotifier is used when no email provider is configured.
type NoopNotifier struct{}

func (NoopNotifier) OrderConfirmed(context.Context, *models.PendingOrder) error {
	return nil
}

type emailNotifier struct {
	emailService sendgrid.EmailService
}

func NewOrderNotifier(emailService sendgrid.EmailService) OrderNotifier {
	if emailService == nil {
		return NoopNotifier{}
	}

	return &emailNotifier{emailService: emailService}
}

// OrderConfirmed implements OrderNotifier.
func (n *emailNotifier) OrderConfirmed(ctx context.Context, order *models.PendingOrder) error {

	if order.CustomerInfo.Email == "" {
		return fmt.Errorf("order %s has no customer email", order.OrderNumber)
	}

	req := &models.EmailNotificationRequest{
		Subject:     fmt.Sprintf("TurboKart Order #%s confirmed", order.OrderNumber),
		Content:     orderText(order),
		HTMLContent: orderHTML(order),
		To:          order.CustomerInfo.Email,
		ToName:      order.CustomerInfo.FullName(),
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return fmt.Errorf("order confirmation email: %w", err)
	}

	return nil
}

func orderText(order *models.PendingOrder) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerInfo.FirstName)
	fmt.Fprintf(&b, "Your cryptocurrency payment for order #%s has been confirmed.\n\n", order.OrderNumber)

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s (%s, %s) $%s\n", item.Quantity, item.Name, item.Color, item.Tires, item.LineTotal().Fixed())
		for _, a := range item.AddOns {
			fmt.Fprintf(&b, "    + %s $%s\n", a.Name, a.Price.Fixed())
		}
	}

	fmt.Fprintf(&b, "\nTotal: $%s\n\n", order.Total.Fixed())
	fmt.Fprintf(&b, "Shipping to:\n%s\n%s\n%s, %s %s\n",
		order.CustomerInfo.FullName(), order.CustomerInfo.Address,
		order.CustomerInfo.City, order.CustomerInfo.State, order.CustomerInfo.Zip)

	return b.String()
}

func orderHTML(order *models.PendingOrder) string {

	var b strings.Builder
	esc := html.EscapeString

	fmt.Fprintf(&b, "<p>Hi %s,</p>", esc(order.CustomerInfo.FirstName))
	fmt.Fprintf(&b, "<p>Your cryptocurrency payment for order <strong>#%s</strong> has been confirmed.</p>", esc(order.OrderNumber))

	b.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%d &times; %s (%s, %s) $%s", item.Quantity, esc(item.Name), esc(item.Color), esc(item.Tires), item.LineTotal().Fixed())
		if len(item.AddOns) > 0 {
			b.WriteString("<ul>")
			for _, a := range item.AddOns {
				fmt.Fprintf(&b, "<li>%s $%s</li>", esc(a.Name), a.Price.Fixed())
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p><strong>Total: $%s</strong></p>", order.Total.Fixed())

	return b.String()
}
