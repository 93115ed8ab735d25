// Package jobs publishes background work to NATS. The only job today is the
// registration confirmation email.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/shoplite/shoplite/internal/domain"
)

// SubjectEmailConfirmation is the NATS subject confirmation-email jobs are
// published on.
const SubjectEmailConfirmation = "shoplite.jobs.email.confirmation"

// EmailConfirmation is the payload of a confirmation-email job.
type EmailConfirmation struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	FirstName string    `json:"firstName"`
}

// Publisher enqueues jobs on a NATS connection.
type Publisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

func NewPublisher(conn *nats.Conn, logger zerolog.Logger) *Publisher {
	return &Publisher{conn: conn, logger: logger}
}

// EnqueueConfirmation publishes a confirmation-email job for the user.
func (p *Publisher) EnqueueConfirmation(ctx context.Context, user *domain.User) error {
	payload := EmailConfirmation{
		UserID:    user.ID(),
		Email:     user.Email(),
		UserName:  user.UserName(),
		FirstName: user.FirstName(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal confirmation job: %w", err)
	}
	if err := p.conn.Publish(SubjectEmailConfirmation, data); err != nil {
		return fmt.Errorf("publish confirmation job: %w", err)
	}

	p.logger.Debug().
		Str("subject", SubjectEmailConfirmation).
		Str("user_id", payload.UserID.String()).
		Msg("enqueued confirmation email")
	return nil
}

// NoopMailer satisfies the confirmation-mailer port when no broker is
// configured, for local development.
type NoopMailer struct {
	logger zerolog.Logger
}

func NewNoopMailer(logger zerolog.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) EnqueueConfirmation(ctx context.Context, user *domain.User) error {
	m.logger.Info().
		Str("user_id", user.ID().String()).
		Str("email", user.Email()).
		Msg("confirmation email skipped, no broker configured")
	return nil
}
