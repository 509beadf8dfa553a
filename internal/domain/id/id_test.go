//go:build unit

package id_test

import (
	"testing"

	"coupon-admin/internal/domain/id"
	"coupon-admin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("accepts object id and lower-cases it", func(t *testing.T) {
		got, err := id.Parse(" 64B7F0C2E1A2B3C4D5E6F708 ")
		require.NoError(t, err)
		assert.Equal(t, "64b7f0c2e1a2b3c4d5e6f708", got)
	})

	for _, raw := range []string{"", "c1", "64b7f0c2e1a2b3c4d5e6f70z", "../stores"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := id.Parse(raw)
			assert.True(t, errs.Is(err, errs.ErrInvalidID))
		})
	}
}
