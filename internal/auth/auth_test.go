package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite/internal/domain"
)

func Test_HashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, VerifyPassword("correct horse battery staple", hash))
	assert.ErrorIs(t, VerifyPassword("wrong password", hash), ErrPasswordMismatch)
}

func Test_HashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func Test_TokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shoplite", time.Hour)
	require.NoError(t, err)

	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)

	token, err := issuer.Issue(account)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	userID, err := issuer.Verify(token.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID(), userID)
}

func Test_TokenIssuer_RejectsForeignToken(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shoplite", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("other-secret", "shoplite", time.Hour)
	require.NoError(t, err)

	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)
	token, err := other.Issue(account)
	require.NoError(t, err)

	_, err = issuer.Verify(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_TokenIssuer_RejectsWrongIssuer(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shoplite", time.Hour)
	require.NoError(t, err)
	foreign, err := NewTokenIssuer("test-secret", "someone-else", time.Hour)
	require.NoError(t, err)

	account, err := domain.NewUser("Ada", "", "ada", "ada@example.com", "")
	require.NoError(t, err)
	token, err := foreign.Issue(account)
	require.NoError(t, err)

	_, err = issuer.Verify(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_TokenIssuer_RejectsGarbage(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shoplite", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_NewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", "shoplite", time.Hour)
	assert.Error(t, err)
}
