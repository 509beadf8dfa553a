//go:build unit

package auth_test

import (
	"testing"
	"time"

	"coupon-admin/internal/domain/auth"
	"coupon-admin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: " admin@example.com ", password: "secret"},
		{name: "missing email", email: "  ", password: "secret", wantErr: auth.ErrEmailRequired},
		{name: "malformed email", email: "admin", password: "secret", wantErr: auth.ErrInvalidEmail},
		{name: "missing password", email: "admin@example.com", password: "", wantErr: auth.ErrPasswordRequired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := auth.NewCredentials(tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, errs.ErrDomainValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", creds.Email().Value())
			assert.Equal(t, tc.password, creds.Password().Value())
		})
	}
}

func TestSessionExpiredAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, auth.Session{Token: "t"}.ExpiredAt(now))
	assert.False(t, auth.Session{Token: "t", ExpiresAt: now.Add(time.Minute)}.ExpiredAt(now))
	assert.True(t, auth.Session{Token: "t", ExpiresAt: now}.ExpiredAt(now))
}
