package marketing

import "context"

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

type Repository interface {
	// SubscribeNewsletter records the email; repeated subscriptions are a no-op.
	SubscribeNewsletter(ctx context.Context, email string) error
	CreateContactMessage(ctx context.Context, msg ContactMessage) error
}
