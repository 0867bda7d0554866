package marketing

import (
	"context"
	"errors"
	"testing"

	"hunargaatha-storefront/internal/domain"
	marketingrepo "hunargaatha-storefront/internal/repository/marketing"
)

type stubRepo struct {
	subscribed []string
	messages   []marketingrepo.ContactMessage
	err        error
}

func (s *stubRepo) SubscribeNewsletter(_ context.Context, email string) error {
	if s.err != nil {
		return s.err
	}
	s.subscribed = append(s.subscribed, email)
	return nil
}

func (s *stubRepo) CreateContactMessage(_ context.Context, msg marketingrepo.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if err := svc.Subscribe(context.Background(), "  Crafts@Example.COM "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.subscribed) != 1 || repo.subscribed[0] != "crafts@example.com" {
		t.Fatalf("email not normalized: %v", repo.subscribed)
	}
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	svc := New(&stubRepo{})

	for _, email := range []string{"", "no-at-sign", "@nothing", "trailing@", "two words@x.com"} {
		if err := svc.Subscribe(context.Background(), email); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", email, err)
		}
	}
}

func TestSubmitContactValidation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	ctx := context.Background()

	if err := svc.SubmitContact(ctx, "", "a@b.com", "hello"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected name error, got %v", err)
	}
	if err := svc.SubmitContact(ctx, "Meera", "a@b.com", "   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected message error, got %v", err)
	}
	if err := svc.SubmitContact(ctx, "Meera", "bad-email", "hello"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected email error, got %v", err)
	}

	if err := svc.SubmitContact(ctx, "Meera", "meera@example.com", "I love the blue pottery."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.messages) != 1 || repo.messages[0].Name != "Meera" {
		t.Fatalf("message not stored: %+v", repo.messages)
	}
}

func TestRepoErrorsSurface(t *testing.T) {
	svc := New(&stubRepo{err: errors.New("db down")})

	if err := svc.Subscribe(context.Background(), "a@b.com"); err == nil || err.Error() != "db down" {
		t.Fatalf("expected repo error, got %v", err)
	}
}
