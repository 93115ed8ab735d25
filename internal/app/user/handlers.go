package user

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/auth"
	"github.com/shoplite/shoplite/internal/domain"
)

// RegisterUserHandler creates an account and enqueues a confirmation email.
// The enqueue is best-effort; registration succeeds even when the mail job
// cannot be published.
type RegisterUserHandler struct {
	users  app.UserDirectory
	mailer ConfirmationMailer
	logger zerolog.Logger
}

func NewRegisterUserHandler(users app.UserDirectory, mailer ConfirmationMailer, logger zerolog.Logger) *RegisterUserHandler {
	return &RegisterUserHandler{users: users, mailer: mailer, logger: logger}
}

func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUser) (app.Result[bool], error) {
	existing, err := h.users.FindByUserName(ctx, cmd.UserName)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if existing != nil {
		return app.Fail[bool]("UserName", "User name is already taken."), nil
	}

	existing, err = h.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if existing != nil {
		return app.Fail[bool]("Email", "Email is already registered."), nil
	}

	account, err := domain.NewUser(cmd.FirstName, cmd.LastName, cmd.UserName, cmd.Email, cmd.PhoneNumber)
	if err != nil {
		return app.FailDomain[bool](err), nil
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return app.Result[bool]{}, err
	}

	if err := h.users.Create(ctx, account, hash); err != nil {
		return app.Result[bool]{}, err
	}

	if err := h.mailer.EnqueueConfirmation(ctx, account); err != nil {
		h.logger.Error().Err(err).
			Str("user_id", account.ID().String()).
			Msg("failed to enqueue confirmation email")
	}

	return app.Ok(true), nil
}

// ConfirmUserEmailHandler marks an account's email as verified.
type ConfirmUserEmailHandler struct {
	users app.UserDirectory
}

func NewConfirmUserEmailHandler(users app.UserDirectory) *ConfirmUserEmailHandler {
	return &ConfirmUserEmailHandler{users: users}
}

func (h *ConfirmUserEmailHandler) Handle(ctx context.Context, cmd ConfirmUserEmail) (app.Result[bool], error) {
	account, err := h.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return app.Result[bool]{}, err
	}
	if account == nil {
		return app.NotFound[bool]("UserID", "User not found"), nil
	}

	if err := h.users.ConfirmEmail(ctx, account.ID()); err != nil {
		return app.Result[bool]{}, err
	}
	return app.Ok(true), nil
}

// PasswordLoginHandler authenticates a user and issues an access token. The
// identifier is treated as an email address when it contains "@", otherwise
// as a user name.
type PasswordLoginHandler struct {
	users  app.UserDirectory
	tokens TokenIssuer
}

func NewPasswordLoginHandler(users app.UserDirectory, tokens TokenIssuer) *PasswordLoginHandler {
	return &PasswordLoginHandler{users: users, tokens: tokens}
}

func (h *PasswordLoginHandler) Handle(ctx context.Context, q PasswordLogin) (app.Result[LoginResult], error) {
	var (
		account *domain.User
		err     error
	)
	if strings.Contains(q.UserNameOrEmail, "@") {
		account, err = h.users.FindByEmail(ctx, q.UserNameOrEmail)
	} else {
		account, err = h.users.FindByUserName(ctx, q.UserNameOrEmail)
	}
	if err != nil {
		return app.Result[LoginResult]{}, err
	}
	if account == nil {
		return app.NotFound[LoginResult]("UserNameOrEmail", "User not found"), nil
	}

	ok, err := h.users.VerifyPassword(ctx, account.ID(), q.Password)
	if err != nil {
		return app.Result[LoginResult]{}, err
	}
	if !ok {
		return app.Fail[LoginResult]("Password", "Invalid credentials."), nil
	}

	token, err := h.tokens.Issue(account)
	if err != nil {
		return app.Result[LoginResult]{}, err
	}

	return app.Ok(LoginResult{
		UserID:      account.ID(),
		UserName:    account.UserName(),
		Email:       account.Email(),
		AccessToken: token,
	}), nil
}
