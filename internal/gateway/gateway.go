// Package gateway holds thin clients for the two payment providers the
// storefront integrates. Each client wraps the provider SDK; request shaping
// and validation live in the checkout service.
package gateway

import "github.com/shopspring/decimal"

// MinorUnits converts a major-unit price to the provider's integer minor
// units (cents, paise).
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).IntPart()
}
