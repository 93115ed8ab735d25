package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite/internal/auth"
	"github.com/shoplite/shoplite/internal/domain"
)

type mockDirectory struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByUserNameFunc func(ctx context.Context, userName string) (*domain.User, error)
	VerifyPasswordFunc func(ctx context.Context, id uuid.UUID, password string) (bool, error)

	created      []*domain.User
	createdHash  string
	confirmedIDs []uuid.UUID
}

func (m *mockDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	u, err := m.FindByID(ctx, id)
	return u != nil, err
}

func (m *mockDirectory) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockDirectory) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	if m.FindByUserNameFunc != nil {
		return m.FindByUserNameFunc(ctx, userName)
	}
	return nil, nil
}

func (m *mockDirectory) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	m.created = append(m.created, user)
	m.createdHash = passwordHash
	return nil
}

func (m *mockDirectory) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	m.confirmedIDs = append(m.confirmedIDs, id)
	return nil
}

func (m *mockDirectory) VerifyPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, id, password)
	}
	return false, nil
}

type mockMailer struct {
	enqueued []*domain.User
	err      error
}

func (m *mockMailer) EnqueueConfirmation(ctx context.Context, user *domain.User) error {
	m.enqueued = append(m.enqueued, user)
	return m.err
}

type mockTokens struct {
	issued []*domain.User
	token  auth.AccessToken
	err    error
}

func (m *mockTokens) Issue(user *domain.User) (auth.AccessToken, error) {
	m.issued = append(m.issued, user)
	return m.token, m.err
}

func validRegistration() RegisterUser {
	return RegisterUser{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		UserName:       "ada",
		Email:          "ada@example.com",
		PhoneNumber:    "01234567890",
		Password:       "correct horse",
		RepeatPassword: "correct horse",
	}
}

func Test_RegisterUser(t *testing.T) {
	dir := &mockDirectory{}
	mailer := &mockMailer{}

	h := NewRegisterUserHandler(dir, mailer, zerolog.Nop())
	res, err := h.Handle(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.True(t, res.Value())

	require.Len(t, dir.created, 1)
	account := dir.created[0]
	assert.Equal(t, "ada", account.UserName())
	assert.False(t, account.EmailConfirmed())
	assert.NotEqual(t, "correct horse", dir.createdHash, "the password is never stored in clear")
	assert.NoError(t, auth.VerifyPassword("correct horse", dir.createdHash))

	require.Len(t, mailer.enqueued, 1)
	assert.Equal(t, account.ID(), mailer.enqueued[0].ID())
}

func Test_RegisterUser_DuplicateUserName(t *testing.T) {
	existing, err := domain.NewUser("Grace", "", "ada", "grace@example.com", "")
	require.NoError(t, err)

	dir := &mockDirectory{
		FindByUserNameFunc: func(ctx context.Context, userName string) (*domain.User, error) {
			return existing, nil
		},
	}

	h := NewRegisterUserHandler(dir, &mockMailer{}, zerolog.Nop())
	res, err := h.Handle(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, "UserName", res.Errors()[0].Field)
	assert.Empty(t, dir.created)
}

func Test_RegisterUser_DuplicateEmail(t *testing.T) {
	existing, err := domain.NewUser("Grace", "", "grace", "ada@example.com", "")
	require.NoError(t, err)

	dir := &mockDirectory{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return existing, nil
		},
	}

	h := NewRegisterUserHandler(dir, &mockMailer{}, zerolog.Nop())
	res, err := h.Handle(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, "Email", res.Errors()[0].Field)
	assert.Empty(t, dir.created)
}

func Test_RegisterUser_MailEnqueueFailureStillSucceeds(t *testing.T) {
	dir := &mockDirectory{}
	mailer := &mockMailer{err: errors.New("broker down")}

	h := NewRegisterUserHandler(dir, mailer, zerolog.Nop())
	res, err := h.Handle(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Len(t, dir.created, 1)
}

func Test_ConfirmUserEmail(t *testing.T) {
	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)

	dir := &mockDirectory{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == account.ID() {
				return account, nil
			}
			return nil, nil
		},
	}

	h := NewConfirmUserEmailHandler(dir)
	res, err := h.Handle(context.Background(), ConfirmUserEmail{UserID: account.ID()})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, []uuid.UUID{account.ID()}, dir.confirmedIDs)
}

func Test_ConfirmUserEmail_UnknownUser(t *testing.T) {
	h := NewConfirmUserEmailHandler(&mockDirectory{})
	res, err := h.Handle(context.Background(), ConfirmUserEmail{UserID: uuid.New()})

	require.NoError(t, err)
	assert.True(t, res.IsNotFound())
}

func Test_PasswordLogin_ByEmail(t *testing.T) {
	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)

	var lookedUp string
	dir := &mockDirectory{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			lookedUp = email
			return account, nil
		},
		VerifyPasswordFunc: func(ctx context.Context, id uuid.UUID, password string) (bool, error) {
			return password == "secret-password", nil
		},
	}
	tokens := &mockTokens{token: auth.AccessToken{Token: "signed", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}}

	h := NewPasswordLoginHandler(dir, tokens)
	res, err := h.Handle(context.Background(), PasswordLogin{UserNameOrEmail: "ada@example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "ada@example.com", lookedUp, "an identifier with @ is an email lookup")
	assert.Equal(t, account.ID(), res.Value().UserID)
	assert.Equal(t, "signed", res.Value().AccessToken.Token)
	require.Len(t, tokens.issued, 1)
}

func Test_PasswordLogin_ByUserName(t *testing.T) {
	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)

	var lookedUp string
	dir := &mockDirectory{
		FindByUserNameFunc: func(ctx context.Context, userName string) (*domain.User, error) {
			lookedUp = userName
			return account, nil
		},
		VerifyPasswordFunc: func(ctx context.Context, id uuid.UUID, password string) (bool, error) {
			return true, nil
		},
	}

	h := NewPasswordLoginHandler(dir, &mockTokens{})
	res, err := h.Handle(context.Background(), PasswordLogin{UserNameOrEmail: "ada", Password: "whatever"})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "ada", lookedUp)
}

func Test_PasswordLogin_UnknownUser(t *testing.T) {
	h := NewPasswordLoginHandler(&mockDirectory{}, &mockTokens{})
	res, err := h.Handle(context.Background(), PasswordLogin{UserNameOrEmail: "nobody", Password: "x"})

	require.NoError(t, err)
	assert.True(t, res.IsNotFound())
	assert.Equal(t, "User not found", res.Errors()[0].Message)
}

func Test_PasswordLogin_WrongPassword(t *testing.T) {
	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)

	tokens := &mockTokens{}
	dir := &mockDirectory{
		FindByUserNameFunc: func(ctx context.Context, userName string) (*domain.User, error) {
			return account, nil
		},
	}

	h := NewPasswordLoginHandler(dir, tokens)
	res, err := h.Handle(context.Background(), PasswordLogin{UserNameOrEmail: "ada", Password: "wrong"})

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.False(t, res.IsNotFound())
	assert.Equal(t, "Password", res.Errors()[0].Field)
	assert.Empty(t, tokens.issued, "no token for a failed login")
}
