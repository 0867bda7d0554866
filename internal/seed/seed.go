package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hunargaatha-storefront/internal/domain"
	productrepo "hunargaatha-storefront/internal/repository/product"
)

// Apply upserts a small handicraft catalog for manual testing. Running it
// twice leaves the same products in place.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{
			ID:            "blue-pottery-vase",
			Name:          "Jaipur Blue Pottery Vase",
			Description:   "Hand-painted quartz-ware vase in the classic cobalt and turquoise palette",
			Price:         decimal.NewFromInt(1450),
			OriginalPrice: decimal.NewFromInt(1800),
			Category:      "pottery",
			Tags:          []string{"Best for Gifting", "Eco-friendly"},
			InStock:       true,
			IsNew:         true,
			Rating:        4.7,
			Reviews:       182,
			Discount:      19,
			Artisan:       "Kripal Singh Kumawat",
			District:      "Jaipur",
			CreatedAt:     base.AddDate(0, 0, 20),
		},
		{
			ID:            "chikankari-kurta",
			Name:          "Chikankari Cotton Kurta",
			Description:   "White-on-white shadow-work embroidery on mulmul cotton",
			Price:         decimal.NewFromInt(2250),
			OriginalPrice: decimal.NewFromInt(2250),
			Category:      "textiles",
			Tags:          []string{"Festive Pick"},
			InStock:       true,
			Rating:        4.5,
			Reviews:       341,
			Size:          "M",
			Artisan:       "Sughra Bano",
			District:      "Lucknow",
			CreatedAt:     base.AddDate(0, 0, 5),
		},
		{
			ID:            "dhokra-elephant",
			Name:          "Dhokra Brass Elephant",
			Description:   "Lost-wax cast brass figurine with tribal lattice work",
			Price:         decimal.NewFromInt(980),
			OriginalPrice: decimal.NewFromInt(1200),
			Category:      "metalcraft",
			Tags:          []string{"Best for Gifting"},
			InStock:       false,
			Rating:        4.8,
			Reviews:       96,
			Discount:      18,
			Artisan:       "Budhiya Rana",
			District:      "Bastar",
			CreatedAt:     base,
		},
		{
			ID:            "madhubani-painting",
			Name:          "Madhubani Fish Motif Painting",
			Description:   "Natural-dye painting on handmade paper, fish and lotus motif",
			Price:         decimal.NewFromInt(3200),
			OriginalPrice: decimal.NewFromInt(3200),
			Category:      "art",
			Tags:          []string{"Eco-friendly", "Festive Pick"},
			InStock:       true,
			IsNew:         true,
			Rating:        4.9,
			Reviews:       58,
			Artisan:       "Dulari Devi",
			District:      "Madhubani",
			CreatedAt:     base.AddDate(0, 0, 25),
		},
	}

	for _, p := range products {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}

	return nil
}
