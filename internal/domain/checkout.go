package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Gateway is the closed set of payment providers the storefront integrates.
type Gateway string

const (
	GatewayStripe   Gateway = "stripe"
	GatewayRazorpay Gateway = "razorpay"
)

// ParseGateway validates the client-supplied gateway selector.
func ParseGateway(s string) (Gateway, error) {
	switch Gateway(s) {
	case GatewayStripe:
		return GatewayStripe, nil
	case GatewayRazorpay:
		return GatewayRazorpay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGateway, s)
	}
}

// CheckoutItem is one line submitted to the stripe branch of checkout.
// Price is in major currency units.
type CheckoutItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CheckoutSession is the opaque handle returned by a gateway for a single
// checkout attempt. Exactly one of SessionID (stripe) or Order (razorpay)
// is populated. Nothing here is persisted.
type CheckoutSession struct {
	Gateway   Gateway
	SessionID string
	Order     map[string]interface{}
}
