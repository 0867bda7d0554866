package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"hunargaatha-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) error
}

// JSONImporter reads a storefront catalog export and inserts/updates products.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{
		reader:      r,
		productRepo: repo,
	}
}

// jsonProduct mirrors the catalog export shape. Prices are major units.
type jsonProduct struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Category      string          `json:"category"`
	Tags          []string        `json:"tags"`
	InStock       bool            `json:"inStock"`
	IsNew         bool            `json:"isNew"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Discount      int             `json:"discount"`
	Image         string          `json:"image"`
	Size          string          `json:"size"`
	Artisan       string          `json:"artisan"`
	District      string          `json:"district"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Run decodes the export and upserts every product, returning how many were
// written. The first invalid entry aborts the run.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var entries []jsonProduct
	if err := json.NewDecoder(i.reader).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	imported := 0
	for n, entry := range entries {
		product, err := entry.toDomain()
		if err != nil {
			return imported, fmt.Errorf("entry %d: %w", n, err)
		}
		if err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", product.ID, err)
		}
		imported++
	}

	return imported, nil
}

func (e jsonProduct) toDomain() (domain.Product, error) {
	switch {
	case e.ID == "":
		return domain.Product{}, fmt.Errorf("missing id")
	case e.Name == "":
		return domain.Product{}, fmt.Errorf("missing name for %q", e.ID)
	case e.Category == "":
		return domain.Product{}, fmt.Errorf("missing category for %q", e.ID)
	case e.Price.IsNegative() || e.Price.IsZero():
		return domain.Product{}, fmt.Errorf("non-positive price for %q", e.ID)
	}

	original := e.OriginalPrice
	if original.IsZero() {
		original = e.Price
	}

	return domain.Product{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Price:         e.Price,
		OriginalPrice: original,
		Category:      e.Category,
		Tags:          e.Tags,
		InStock:       e.InStock,
		IsNew:         e.IsNew,
		Rating:        e.Rating,
		Reviews:       e.Reviews,
		Discount:      e.Discount,
		Image:         e.Image,
		Size:          e.Size,
		Artisan:       e.Artisan,
		District:      e.District,
		CreatedAt:     e.CreatedAt,
	}, nil
}
