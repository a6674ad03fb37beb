package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

// PasswordResetToken is a capability: possession of an unexpired,
// still-stored token authorizes exactly one password reset.
type PasswordResetToken string

// PasswordResetter issues and verifies self-contained reset tokens binding
// an email and an expiry instant. It is stateless; single-use semantics
// come from the copy persisted on the account.
type PasswordResetter interface {
	GenerateToken(email c.Email) (token PasswordResetToken, expiresAt time.Time, err error)
	// GetEmail reports the email the token was issued for. ok is false if
	// the signature is invalid, the payload is malformed or the token has
	// expired; a token is invalid exactly at its expiry instant.
	GetEmail(token PasswordResetToken) (email c.Email, ok bool)
}

type PasswordResetTokenSender interface {
	SendToken(ctx context.Context, user User, token PasswordResetToken) error
}
