package user

import (
	"errors"
	"strings"
)

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

// PasswordSymbols is the fixed set of symbols a reset password may (and
// must, at least once) contain.
const PasswordSymbols = "!@#$%^&*"

const minComplexPasswordLength = 8

var (
	errPasswordTooShort     = errors.New("password must be at least 8 characters long")
	errPasswordNoLower      = errors.New("password must contain a lowercase letter")
	errPasswordNoUpper      = errors.New("password must contain an uppercase letter")
	errPasswordNoDigit      = errors.New("password must contain a digit")
	errPasswordNoSymbol     = errors.New("password must contain one of !@#$%^&*")
	errPasswordBadCharacter = errors.New("password contains a disallowed character")
)

// CheckPasswordComplexity enforces the policy for new passwords set via the
// reset flow: minimum 8 characters, at least one lowercase letter, one
// uppercase letter, one digit and one symbol from PasswordSymbols, with no
// characters outside [A-Za-z0-9!@#$%^&*].
func CheckPasswordComplexity(password RawPassword) error {
	if len(password) < minComplexPasswordLength {
		return errPasswordTooShort
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range string(password) {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			return errPasswordBadCharacter
		}
	}
	switch {
	case !hasLower:
		return errPasswordNoLower
	case !hasUpper:
		return errPasswordNoUpper
	case !hasDigit:
		return errPasswordNoDigit
	case !hasSymbol:
		return errPasswordNoSymbol
	}
	return nil
}
