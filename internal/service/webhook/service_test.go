package webhook

import (
	"errors"
	"testing"

	"hunargaatha-storefront/internal/domain"
)

const (
	testBody   = `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_MkWz1Yt6k0QRbL","amount":120000,"currency":"INR"}}}}`
	testSecret = "rzp_test_secret"
	// hex HMAC-SHA256 of testBody under testSecret
	testSignature = "7422e5882a52267f135233692119fdf5e840ace4dd4399fa39465bf8fc7007f8"
)

func TestVerifyRazorpaySignature_KnownVector(t *testing.T) {
	if !VerifyRazorpaySignature([]byte(testBody), testSignature, testSecret) {
		t.Fatalf("known-good signature rejected")
	}
}

func TestVerifyRazorpaySignature_AnyByteMutationFails(t *testing.T) {
	body := []byte(testBody)
	for i := range body {
		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[i] ^= 0x01
		if VerifyRazorpaySignature(mutated, testSignature, testSecret) {
			t.Fatalf("mutation at byte %d still verified", i)
		}
	}
}

func TestVerifyRazorpaySignature_WrongSecret(t *testing.T) {
	if VerifyRazorpaySignature([]byte(testBody), testSignature, "other-secret") {
		t.Fatalf("signature verified under wrong secret")
	}
}

func TestHandleRazorpay(t *testing.T) {
	svc := New("whsec_ignored", testSecret, nil)

	if err := svc.HandleRazorpay([]byte(testBody), testSignature); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.HandleRazorpay([]byte(testBody), "deadbeef")
	if !errors.Is(err, domain.ErrSignatureMismatch) {
		t.Fatalf("expected signature mismatch, got %v", err)
	}
}

func TestHandleStripe_RejectsBadSignature(t *testing.T) {
	svc := New("whsec_test", testSecret, nil)

	err := svc.HandleStripe([]byte(`{"type":"checkout.session.completed"}`), "t=1,v1=bogus")
	if !errors.Is(err, domain.ErrSignatureMismatch) {
		t.Fatalf("expected signature mismatch, got %v", err)
	}
}
