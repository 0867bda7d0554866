package domain

import "github.com/shopspring/decimal"

// CartLine is one product/quantity pairing in a cart. A cart holds at most
// one line per product id and every line quantity is positive.
type CartLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	Items []CartLine `json:"items"`
}

// Total is the sum of unitPrice times quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}
