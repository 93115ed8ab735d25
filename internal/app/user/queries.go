package user

import (
	"github.com/google/uuid"

	"github.com/shoplite/shoplite/internal/auth"
)

// PasswordLogin authenticates by user name or email address plus password.
type PasswordLogin struct {
	UserNameOrEmail string `json:"userNameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

func (PasswordLogin) ValidationMessages() map[string]string {
	return map[string]string{
		"UserNameOrEmail": "User name or email is required.",
		"Password":        "Password is required.",
	}
}

// LoginResult carries the issued access token and basic profile fields.
type LoginResult struct {
	UserID      uuid.UUID        `json:"userId"`
	UserName    string           `json:"userName"`
	Email       string           `json:"email"`
	AccessToken auth.AccessToken `json:"accessToken"`
}
