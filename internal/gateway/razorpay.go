package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// RazorpayGateway creates provider orders.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates an order for the major-unit amount and returns the
// provider's order object verbatim. The SDK carries no context support; the
// call is not cancellable once issued.
func (g *RazorpayGateway) CreateOrder(_ context.Context, amount decimal.Decimal, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   MinorUnits(amount),
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	return order, nil
}
