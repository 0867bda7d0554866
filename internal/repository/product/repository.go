package product

import (
	"context"

	"hunargaatha-storefront/internal/domain"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) error
}
