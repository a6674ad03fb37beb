package passwordresetter

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "accounts"

// JWT issues HMAC-SHA256-signed reset tokens carrying the email as the
// subject claim and the expiry as the exp claim. Tokens are self-contained:
// verification needs no store lookup.
type JWT struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secretKey string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (j *JWT) GenerateToken(email c.Email) (token user.PasswordResetToken, expiresAt time.Time, err error) {
	now := j.now()
	expiresAt = now.Add(j.validDuration)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   string(email),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return token, expiresAt, fmt.Errorf("could not sign password reset token: %w", err)
	}
	return user.PasswordResetToken(signed), expiresAt, nil
}

func (j *JWT) GetEmail(token user.PasswordResetToken) (email c.Email, ok bool) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&claims,
		j.keyFunc,
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid {
		return email, false
	}
	// A token is invalid exactly at its expiry instant.
	if claims.ExpiresAt == nil || !j.now().Before(claims.ExpiresAt.Time) {
		return email, false
	}
	if claims.Subject == "" {
		return email, false
	}
	return c.Email(claims.Subject), true
}

func (j *JWT) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return j.secretKey, nil
}
