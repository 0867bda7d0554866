package cart

import (
	"context"
	"errors"

	"hunargaatha-storefront/internal/domain"
)

// ErrNoSavedCart indicates no cart has been persisted for the session yet.
var ErrNoSavedCart = errors.New("no saved cart")

// Repository is the durable store behind the cart state container.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
