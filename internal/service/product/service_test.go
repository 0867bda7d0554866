package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"hunargaatha-storefront/internal/domain"
)

type stubRepo struct {
	products []domain.Product
	err      error
}

func (s *stubRepo) ListAll(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Upsert(_ context.Context, _ domain.Product) error {
	return nil
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func catalog() []domain.Product {
	return []domain.Product{
		{ID: "vase", Category: "pottery", Price: price(1200), Reviews: 40, InStock: true, Tags: []string{tagGifting}},
		{ID: "shawl", Category: "handloom", Price: price(3500), Reviews: 120, InStock: true, Tags: []string{tagEco}},
		{ID: "diya", Category: "pottery", Price: price(300), Reviews: 85, InStock: false, IsNew: true, Tags: []string{tagFestive, tagGifting}},
		{ID: "itar", Category: "fragrances", Price: price(900), Reviews: 10, InStock: true},
	}
}

func TestList_NoQueryReturnsAllInOrder(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 products, got %d", len(got))
	}
	if got[0].ID != "vase" || got[3].ID != "itar" {
		t.Fatalf("order changed without a sort key: %+v", got)
	}
}

func TestList_CategoryFilter(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Category: "pottery"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "vase" || got[1].ID != "diya" {
		t.Fatalf("unexpected pottery products: %+v", got)
	}
}

func TestList_AvailableFilterOnlyInStock(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Filter: "available"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range got {
		if !p.InStock {
			t.Fatalf("out of stock product %s passed the available filter", p.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 available products, got %d", len(got))
	}
}

func TestList_TagFilters(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})

	got, err := svc.List(context.Background(), ListQuery{Filter: "gifting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 gifting products, got %d", len(got))
	}

	got, err = svc.List(context.Background(), ListQuery{Filter: "festive"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "diya" {
		t.Fatalf("unexpected festive products: %+v", got)
	}
}

func TestList_SortPriceLowIsNonDecreasing(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Sort: "price-low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price.LessThan(got[i-1].Price) {
			t.Fatalf("price-low not non-decreasing at %d: %+v", i, got)
		}
	}
}

func TestList_SortPriceHigh(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Sort: "price-high"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "shawl" {
		t.Fatalf("expected shawl first, got %s", got[0].ID)
	}
}

func TestList_SortNewestPutsNewFirstStable(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Sort: "newest"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "diya" {
		t.Fatalf("expected new-flagged product first, got %s", got[0].ID)
	}
	// remaining items keep catalog order
	if got[1].ID != "vase" || got[2].ID != "shawl" || got[3].ID != "itar" {
		t.Fatalf("stable order broken: %+v", got)
	}
}

func TestList_SortPopularDescendingReviews(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	got, err := svc.List(context.Background(), ListQuery{Sort: "popular"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Reviews > got[i-1].Reviews {
			t.Fatalf("popular not descending at %d: %+v", i, got)
		}
	}
}

func TestList_SortDoesNotMutateInput(t *testing.T) {
	products := catalog()
	svc := New(&stubRepo{products: products})
	if _, err := svc.List(context.Background(), ListQuery{Sort: "price-low"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[0].ID != "vase" {
		t.Fatalf("input slice mutated: %+v", products)
	}
}

func TestList_RepoError(t *testing.T) {
	svc := New(&stubRepo{err: errors.New("boom")})
	_, err := svc.List(context.Background(), ListQuery{})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&stubRepo{products: catalog()})
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
