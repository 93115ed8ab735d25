package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/auth"
	"github.com/shoplite/shoplite/internal/domain"
)

// UserDirectory implements the account store on PostgreSQL. Its writes are
// immediate; accounts are not part of any aggregate transaction.
type UserDirectory struct {
	pool *pgxpool.Pool
}

var _ app.UserDirectory = (*UserDirectory)(nil)

func NewUserDirectory(pool *pgxpool.Pool) *UserDirectory {
	return &UserDirectory{pool: pool}
}

func (d *UserDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := d.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user %s exists: %w", id, err)
	}
	return exists, nil
}

func (d *UserDirectory) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return d.find(ctx, `id = $1`, id)
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return d.find(ctx, `lower(email) = lower($1)`, email)
}

func (d *UserDirectory) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return d.find(ctx, `lower(user_name) = lower($1)`, userName)
}

func (d *UserDirectory) find(ctx context.Context, where string, arg any) (*domain.User, error) {
	var (
		id             uuid.UUID
		firstName      string
		lastName       string
		userName       string
		email          string
		phoneNumber    string
		emailConfirmed bool
	)
	query := `SELECT id, first_name, last_name, user_name, email, phone_number, email_confirmed
		 FROM users WHERE ` + where
	err := d.pool.QueryRow(ctx, query, arg).Scan(
		&id, &firstName, &lastName, &userName, &email, &phoneNumber, &emailConfirmed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return domain.RehydrateUser(id, firstName, lastName, userName, email, phoneNumber, emailConfirmed), nil
}

func (d *UserDirectory) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, user_name, email, phone_number, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID(), user.FirstName(), user.LastName(), user.UserName(),
		user.Email(), user.PhoneNumber(), passwordHash,
	)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.ID(), err)
	}
	return nil
}

func (d *UserDirectory) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE users SET email_confirmed = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("confirm email for user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("confirm email: user %s not found", id)
	}
	return nil
}

func (d *UserDirectory) VerifyPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	var hash string
	err := d.pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE id = $1`, id,
	).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load password hash for user %s: %w", id, err)
	}

	if err := auth.VerifyPassword(password, hash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
