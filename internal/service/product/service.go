package product

import (
	"context"

	"hunargaatha-storefront/internal/domain"
	productrepo "hunargaatha-storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListQuery selects and orders catalog products. Zero values pass everything
// and leave the order unchanged.
type ListQuery struct {
	Category string
	Filter   string
	Sort     string
}

// List fetches the full catalog and applies the filter/sort pipeline. The
// pipeline is pure and recomputed in full on every call.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := filterProducts(products, q.Category, q.Filter)
	return sortProducts(filtered, q.Sort), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
