//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/tests/common/authtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectorReadsUnverifiedExpiry(t *testing.T) {
	exp := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	token := authtest.BackendToken(t, exp)
	i := jwt.NewInspector()

	claims, err := i.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	got, ok := i.ExpiresAt(token)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	assert.NoError(t, i.CheckExpiry(token, exp.Add(-time.Second)))
	assert.ErrorIs(t, i.CheckExpiry(token, exp), jwt.ErrExpiredToken)
}

func TestInspectorOpaqueTokens(t *testing.T) {
	i := jwt.NewInspector()

	_, err := i.Inspect("not-a-jwt")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, ok := i.ExpiresAt("not-a-jwt")
	assert.False(t, ok)
	assert.NoError(t, i.CheckExpiry("not-a-jwt", time.Now()), "tokens without exp never expire locally")
}
