package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the subset of the backend's token payload the admin reads.
type Claims struct {
	ID    string `json:"id,omitempty"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Inspector reads backend-issued tokens without verifying their signature:
// the signing secret belongs to the backend, which verifies on every call.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExpiresAt returns the exp claim, or ok=false when the token is opaque or carries none.
func (i *Inspector) ExpiresAt(tokenString string) (time.Time, bool) {
	claims, err := i.Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (i *Inspector) CheckExpiry(tokenString string, now time.Time) error {
	exp, ok := i.ExpiresAt(tokenString)
	if ok && !now.Before(exp) {
		return ErrExpiredToken
	}
	return nil
}
