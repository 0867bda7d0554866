package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"hunargaatha-storefront/internal/domain"
	cartrepo "hunargaatha-storefront/internal/repository/cart"
)

// Service holds per-session cart state. The in-memory cart is authoritative
// for the session; the repository is a write-behind durable mirror, hydrated
// once per session on first access.
type Service struct {
	mu       sync.Mutex
	sessions map[string]domain.Cart

	repo        cartrepo.Repository
	productRepo productRepo
	logger      *log.Logger
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, productRepo productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		sessions:    make(map[string]domain.Cart),
		repo:        repo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *Service) Get(ctx context.Context, sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(ctx, sessionID)
}

// AddItem resolves the product and increments its line, appending a new line
// on first add.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Cart{}, fmt.Errorf("%w: unknown product %q", domain.ErrValidation, productID)
		}
		return domain.Cart{}, err
	}

	return s.apply(ctx, sessionID, Action{Kind: ActionAddItem, Product: *product, Quantity: quantity}), nil
}

// RemoveItem deletes the matching line; removing an absent product is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) domain.Cart {
	return s.apply(ctx, sessionID, Action{Kind: ActionRemoveItem, ProductID: productID})
}

// UpdateQuantity sets the line quantity directly; zero or below removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) domain.Cart {
	return s.apply(ctx, sessionID, Action{Kind: ActionUpdateQuantity, ProductID: productID, Quantity: quantity})
}

func (s *Service) Clear(ctx context.Context, sessionID string) domain.Cart {
	return s.apply(ctx, sessionID, Action{Kind: ActionClear})
}

// apply runs one reducer transition and then the persistence hook. Persistence
// failures are logged and swallowed; the in-memory cart stays authoritative.
func (s *Service) apply(ctx context.Context, sessionID string, action Action) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.current(ctx, sessionID), action)
	s.sessions[sessionID] = next

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		s.logger.Printf("cart service: persist session=%s error=%v", sessionID, err)
	}
	return next
}

// current returns the session cart, hydrating from the repository on first
// access. Hydration failures yield an empty cart.
func (s *Service) current(ctx context.Context, sessionID string) domain.Cart {
	if cart, ok := s.sessions[sessionID]; ok {
		return cart
	}

	cart := domain.Cart{}
	saved, err := s.repo.Load(ctx, sessionID)
	switch {
	case err == nil:
		cart = *saved
	case errors.Is(err, cartrepo.ErrNoSavedCart):
	default:
		s.logger.Printf("cart service: hydrate session=%s error=%v", sessionID, err)
	}

	s.sessions[sessionID] = cart
	return cart
}
