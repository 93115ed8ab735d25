// Package user holds account registration and login.
package user

import "github.com/google/uuid"

// RegisterUser creates an account with a hashed password.
type RegisterUser struct {
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"max=100"`
	UserName       string `json:"userName" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required,len=11,numeric"`
	Password       string `json:"password" validate:"required,min=8"`
	RepeatPassword string `json:"repeatPassword" validate:"required,eqfield=Password"`
}

func (RegisterUser) ValidationMessages() map[string]string {
	return map[string]string{
		"FirstName":      "First name is required.",
		"UserName":       "User name is required.",
		"Email":          "A valid email address is required.",
		"PhoneNumber":    "Phone number must be exactly 11 digits.",
		"Password":       "Password must be at least 8 characters.",
		"RepeatPassword": "Passwords do not match.",
	}
}

// ConfirmUserEmail marks an account's email address as verified.
type ConfirmUserEmail struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}
