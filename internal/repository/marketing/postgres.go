package marketing

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) SubscribeNewsletter(ctx context.Context, email string) error {
	const q = `
INSERT INTO newsletter_subscribers (email)
VALUES ($1)
ON CONFLICT (email) DO NOTHING
`
	cmd, err := r.pool.Exec(ctx, q, email)
	if err != nil {
		r.logger.Printf("marketing repo: subscribe email=%s error=%v", email, err)
		return err
	}
	r.logger.Printf("marketing repo: subscribe email=%s inserted=%d", email, cmd.RowsAffected())
	return nil
}

func (r *postgresRepo) CreateContactMessage(ctx context.Context, msg ContactMessage) error {
	const q = `
INSERT INTO contact_messages (name, email, message)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, msg.Name, msg.Email, msg.Message); err != nil {
		r.logger.Printf("marketing repo: contact email=%s error=%v", msg.Email, err)
		return err
	}
	r.logger.Printf("marketing repo: contact message stored email=%s", msg.Email)
	return nil
}
