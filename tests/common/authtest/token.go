//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/tokenbox"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signingSecret stands in for the backend's key; the admin never verifies it.
const signingSecret = "backend-secret"

// BackendToken issues a token shaped like the backend's, expiring at exp.
func BackendToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    "64b7f0c2e1a2b3c4d5e6f7e1",
		"email": "admin@example.com",
		"role":  "admin",
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	require.NoError(t, err)
	return token
}

// SessionCookie is the cookie a browser holds after logging in with token.
func SessionCookie(t *testing.T, cfg config.Config, token string) *http.Cookie {
	t.Helper()
	sealed, err := tokenbox.New(cfg.Session.Secret).Seal(token)
	require.NoError(t, err)
	return &http.Cookie{Name: cfg.Session.TokenCookieName, Value: sealed}
}

// LoggedIn is a session cookie holding a token valid for an hour from now.
func LoggedIn(t *testing.T, cfg config.Config, now time.Time) *http.Cookie {
	t.Helper()
	return SessionCookie(t, cfg, BackendToken(t, now.Add(time.Hour)))
}
