package domain

import "github.com/google/uuid"

// User is a registered account. Credential handling lives in the auth
// package; the domain only carries the profile.
type User struct {
	id             uuid.UUID
	firstName      string
	lastName       string
	userName       string
	email          string
	phoneNumber    string
	emailConfirmed bool
}

// NewUser creates a user profile. Last name and phone number are optional.
func NewUser(firstName, lastName, userName, email, phoneNumber string) (*User, error) {
	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if userName == "" {
		return nil, ErrUserNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	return &User{
		id:          uuid.New(),
		firstName:   firstName,
		lastName:    lastName,
		userName:    userName,
		email:       email,
		phoneNumber: phoneNumber,
	}, nil
}

// RehydrateUser reconstructs a user from persisted state.
func RehydrateUser(id uuid.UUID, firstName, lastName, userName, email, phoneNumber string, emailConfirmed bool) *User {
	return &User{
		id:             id,
		firstName:      firstName,
		lastName:       lastName,
		userName:       userName,
		email:          email,
		phoneNumber:    phoneNumber,
		emailConfirmed: emailConfirmed,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) UserName() string     { return u.userName }
func (u *User) Email() string        { return u.email }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) EmailConfirmed() bool { return u.emailConfirmed }

// ConfirmEmail marks the user's email address as verified.
func (u *User) ConfirmEmail() {
	u.emailConfirmed = true
}

// Equal compares users by identity.
func (u *User) Equal(other *User) bool {
	return other != nil && u.id == other.id
}
