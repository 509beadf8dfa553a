//go:build unit

package flash_test

import (
	"strings"
	"testing"

	"coupon-admin/internal/handler/flash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := flash.NewCodec("secret")

	v, err := codec.Encode(flash.Flash{Kind: flash.KindSuccess, Message: "Deleted successfully"})
	require.NoError(t, err)

	got, err := codec.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, &flash.Flash{Kind: flash.KindSuccess, Message: "Deleted successfully"}, got)
}

func TestCodecRejectsTampering(t *testing.T) {
	codec := flash.NewCodec("secret")
	v, err := codec.Encode(flash.Flash{Kind: flash.KindError, Message: "Delete failed"})
	require.NoError(t, err)

	payload, sig, _ := strings.Cut(v, ".")
	forged, err := flash.NewCodec("other").Encode(flash.Flash{Kind: flash.KindSuccess, Message: "ok"})
	require.NoError(t, err)
	forgedPayload, _, _ := strings.Cut(forged, ".")

	tests := []string{
		"",
		payload,
		payload + ".bad",
		forgedPayload + "." + sig,
		forged,
	}
	for _, in := range tests {
		_, err := codec.Decode(in)
		assert.ErrorIs(t, err, flash.ErrInvalid, in)
	}
}

func TestCodecRejectsEmptyMessage(t *testing.T) {
	codec := flash.NewCodec("secret")
	v, err := codec.Encode(flash.Flash{Kind: flash.KindInfo, Message: "  "})
	require.NoError(t, err)

	_, err = codec.Decode(v)
	assert.ErrorIs(t, err, flash.ErrInvalid)
}
