package user

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID                  ID
	FirstName           string
	LastName            string
	Email               c.Email
	Phone               c.Phone
	PasswordHash        PasswordHash
	Country             string
	ReceiveNews         bool
	ResetToken          c.Optional[PasswordResetToken]
	ResetTokenExpiresAt c.Optional[time.Time]
	CreatedAt           time.Time
}

// Validate checks the reset sub-state invariant: token and expiry are
// both set or both absent.
func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetToken.IsPresent != u.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and its expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasPendingReset(now time.Time) bool {
	if !u.ResetToken.IsPresent || !u.ResetTokenExpiresAt.IsPresent {
		return false
	}
	return now.Before(u.ResetTokenExpiresAt.Value)
}
