package user

import (
	"context"

	"github.com/shoplite/shoplite/internal/auth"
	"github.com/shoplite/shoplite/internal/domain"
)

// ConfirmationMailer enqueues a confirmation email for a freshly registered
// account. Enqueue failures are logged by callers, never surfaced to the
// registering user.
type ConfirmationMailer interface {
	EnqueueConfirmation(ctx context.Context, user *domain.User) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (auth.AccessToken, error)
}
