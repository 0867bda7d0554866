package marketing

import (
	"context"
	"fmt"
	"strings"

	"hunargaatha-storefront/internal/domain"
	marketingrepo "hunargaatha-storefront/internal/repository/marketing"
)

type Service struct {
	repo marketingrepo.Repository
}

func New(repo marketingrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe records a newsletter signup. Re-subscribing is not an error.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	return s.repo.SubscribeNewsletter(ctx, email)
}

func (s *Service) SubmitContact(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	email = strings.TrimSpace(strings.ToLower(email))

	switch {
	case name == "":
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	case message == "":
		return fmt.Errorf("%w: message required", domain.ErrValidation)
	case !validEmail(email):
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	return s.repo.CreateContactMessage(ctx, marketingrepo.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.Contains(email, " ")
}
