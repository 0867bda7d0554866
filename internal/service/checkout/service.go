package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"hunargaatha-storefront/internal/domain"
)

type stripeGateway interface {
	CreateCheckoutSession(ctx context.Context, items []domain.CheckoutItem) (string, error)
}

type razorpayGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (map[string]interface{}, error)
}

// Service creates one provider session per checkout attempt. It performs no
// idempotency handling: a retried request mints a new session/order each time
// and callers must dedupe.
type Service struct {
	stripe   stripeGateway
	razorpay razorpayGateway
	logger   *log.Logger
	now      func() time.Time
}

func New(stripe stripeGateway, razorpay razorpayGateway, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		stripe:   stripe,
		razorpay: razorpay,
		logger:   logger,
		now:      time.Now,
	}
}

// Request is the client checkout payload. The stripe branch reads Items; the
// razorpay branch reads Amount and Currency.
type Request struct {
	Gateway  string                `json:"gateway"`
	Items    []domain.CheckoutItem `json:"items,omitempty"`
	Amount   decimal.Decimal       `json:"amount,omitempty"`
	Currency string                `json:"currency,omitempty"`
}

// CreateSession dispatches on the gateway tag once and runs the matching
// branch. An unknown tag fails before any provider is called.
func (s *Service) CreateSession(ctx context.Context, req Request) (*domain.CheckoutSession, error) {
	gw, err := domain.ParseGateway(req.Gateway)
	if err != nil {
		return nil, err
	}

	switch gw {
	case domain.GatewayStripe:
		return s.createStripeSession(ctx, req.Items)
	default:
		return s.createRazorpayOrder(ctx, req.Amount, req.Currency)
	}
}

func (s *Service) createStripeSession(ctx context.Context, items []domain.CheckoutItem) (*domain.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items required", domain.ErrValidation)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for %q", domain.ErrValidation, item.Name)
		}
	}

	sessionID, err := s.stripe.CreateCheckoutSession(ctx, items)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("checkout: stripe session created id=%s lines=%d", sessionID, len(items))
	return &domain.CheckoutSession{Gateway: domain.GatewayStripe, SessionID: sessionID}, nil
}

func (s *Service) createRazorpayOrder(ctx context.Context, amount decimal.Decimal, currency string) (*domain.CheckoutSession, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if currency == "" {
		currency = "INR"
	}
	receipt := fmt.Sprintf("order_rcpt_%d", s.now().UnixMilli())

	order, err := s.razorpay.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("checkout: razorpay order created receipt=%s currency=%s", receipt, currency)
	return &domain.CheckoutSession{Gateway: domain.GatewayRazorpay, Order: order}, nil
}
