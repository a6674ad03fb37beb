package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// Email is the primary login key. Emails are compared case-insensitively,
// so NewEmail lowercases and trims the raw value once at the boundary.
type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

// Phone is the secondary login key, stored trimmed.
type Phone string

func NewPhone(rawPhone string) Phone {
	return Phone(strings.TrimSpace(rawPhone))
}
