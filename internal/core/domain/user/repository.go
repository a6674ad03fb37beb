package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	FirstName    string
	LastName     string
	Email        c.Email
	Phone        c.Phone
	PasswordHash PasswordHash
	Country      string
	ReceiveNews  bool
	CreatedAt    time.Time
}

type UserRepository interface {
	// Create inserts a new account. Email and phone uniqueness is enforced
	// atomically by the store; violations are reported as
	// ErrEmailAlreadyExists or ErrPhoneAlreadyExists, including under a
	// check-then-insert race.
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetByPhone(ctx context.Context, phone c.Phone) (User, error)
	// GetByEmailOrPhone looks an account up by either login key.
	GetByEmailOrPhone(ctx context.Context, identifier string) (User, error)
	// GetByResetToken returns the account matching email and stored token,
	// provided the stored expiry is strictly after now.
	GetByResetToken(ctx context.Context, email c.Email, token PasswordResetToken, now time.Time) (User, error)
	SetPasswordResetToken(ctx context.Context, id ID, token PasswordResetToken, expiresAt time.Time) error
	// SetPassword replaces the password hash and clears any pending reset
	// token in the same update.
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}
