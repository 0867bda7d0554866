package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"

	stripewebhook "github.com/stripe/stripe-go/v78/webhook"

	"hunargaatha-storefront/internal/domain"
)

// Service verifies inbound payment-provider events. Both paths fail closed:
// a payload that does not verify is rejected and left to the provider's own
// redelivery policy. No order state is mutated on receipt.
type Service struct {
	stripeSecret   string
	razorpaySecret string
	logger         *log.Logger
}

func New(stripeSecret, razorpaySecret string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		stripeSecret:   stripeSecret,
		razorpaySecret: razorpaySecret,
		logger:         logger,
	}
}

// HandleStripe reconstructs the event from the raw body and signature header.
func (s *Service) HandleStripe(payload []byte, signatureHeader string) error {
	event, err := stripewebhook.ConstructEvent(payload, signatureHeader, s.stripeSecret)
	if err != nil {
		s.logger.Printf("webhook: stripe event rejected: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrSignatureMismatch, err)
	}

	if event.Type == "checkout.session.completed" {
		s.logger.Printf("webhook: stripe payment success session=%v", event.Data.Object["id"])
	} else {
		s.logger.Printf("webhook: stripe event ignored type=%s", event.Type)
	}
	return nil
}

// HandleRazorpay checks the body HMAC against the header signature.
func (s *Service) HandleRazorpay(body []byte, signature string) error {
	if !VerifyRazorpaySignature(body, signature, s.razorpaySecret) {
		s.logger.Printf("webhook: razorpay signature mismatch")
		return domain.ErrSignatureMismatch
	}
	s.logger.Printf("webhook: razorpay event verified")
	return nil
}

// VerifyRazorpaySignature reports whether signature is the hex HMAC-SHA256 of
// body under the shared secret. The comparison is constant time.
func VerifyRazorpaySignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
