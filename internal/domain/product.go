package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers, matching the catalog documents.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. The catalog owns it; this service only reads.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice,omitempty"`
	Category      string          `json:"category"`
	Tags          []string        `json:"tags"`
	InStock       bool            `json:"inStock"`
	IsNew         bool            `json:"isNew,omitempty"`
	Rating        float64         `json:"rating,omitempty"`
	Reviews       int             `json:"reviews,omitempty"`
	Discount      int             `json:"discount,omitempty"`
	Image         string          `json:"image,omitempty"`
	Size          string          `json:"size,omitempty"`
	Artisan       string          `json:"artisan,omitempty"`
	District      string          `json:"district,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitempty"`
}

// HasTag reports whether the product carries the given display tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
