package gateway

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"hunargaatha-storefront/internal/domain"
)

// StripeGateway creates hosted checkout sessions.
type StripeGateway struct {
	api     *client.API
	baseURL string
}

// NewStripe builds a gateway from the secret key and the storefront base URL
// used for redirect targets.
func NewStripe(secretKey, baseURL string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, baseURL: baseURL}
}

// CreateCheckoutSession opens a single-payment card session and returns its id.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, items []domain.CheckoutItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(MinorUnits(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(g.baseURL + "/order-success"),
		CancelURL:          stripe.String(g.baseURL + "/checkout"),
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe checkout session: %w", err)
	}
	return session.ID, nil
}
