//go:build unit

package coupon_test

import (
	"encoding/json"
	"testing"
	"time"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRefDecoding(t *testing.T) {
	t.Run("denormalized summary", func(t *testing.T) {
		var c coupon.Coupon
		err := json.Unmarshal([]byte(`{"_id":"c1","offerDetails":"10% off","active":true,"isValid":true,"featuredForHome":false,"store":{"_id":"s1","name":"Acme","trackingUrl":"https://acme.example","image":{"url":"https://img.example/a.png"}}}`), &c)
		require.NoError(t, err)
		assert.Equal(t, "s1", c.Store.ID)
		assert.Equal(t, "Acme", c.Store.DisplayName())
		assert.Equal(t, "Acme", c.Store.ImageAlt())
		assert.True(t, c.Store.HasImage())
	})

	t.Run("bare identifier", func(t *testing.T) {
		var c coupon.Coupon
		err := json.Unmarshal([]byte(`{"_id":"c1","offerDetails":"x","store":"s1"}`), &c)
		require.NoError(t, err)
		assert.Equal(t, "s1", c.Store.ID)
		assert.Equal(t, "Unknown Store", c.Store.DisplayName())
		assert.False(t, c.Store.HasImage())
	})

	t.Run("null store", func(t *testing.T) {
		var c coupon.Coupon
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"c1","store":null}`), &c))
		assert.Equal(t, coupon.StoreRef{}, c.Store)
	})

	t.Run("wrong type", func(t *testing.T) {
		var c coupon.Coupon
		assert.Error(t, json.Unmarshal([]byte(`{"_id":"c1","store":42}`), &c))
	})
}

func TestExpirationDateDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want *time.Time
	}{
		{"RFC3339", `"2025-12-31T18:30:00.000Z"`, ptr.Of(time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC))},
		{"date only", `"2025-12-31"`, ptr.Of(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))},
		{"datetime-local", `"2025-12-31T18:30"`, ptr.Of(time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC))},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
		{"garbage", `"soon"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c coupon.Coupon
			err := json.Unmarshal([]byte(`{"_id":"c1","offerDetails":"x","store":"s1","expirationDate":`+tt.json+`}`), &c)
			require.NoError(t, err)
			assert.Equal(t, "c1", c.ID)
			assert.Equal(t, "s1", c.Store.ID)
			if tt.want == nil {
				assert.Nil(t, c.ExpirationDate)
				return
			}
			require.NotNil(t, c.ExpirationDate)
			assert.True(t, tt.want.Equal(*c.ExpirationDate), "got %s", c.ExpirationDate)
		})
	}

	t.Run("absent field", func(t *testing.T) {
		c := coupon.Coupon{ExpirationDate: ptr.Of(time.Now())}
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"c1"}`), &c))
		assert.Nil(t, c.ExpirationDate)
	})

	t.Run("non-string is still an error", func(t *testing.T) {
		var c coupon.Coupon
		assert.Error(t, json.Unmarshal([]byte(`{"_id":"c1","expirationDate":20251231}`), &c))
	})
}

func TestParseExpiration(t *testing.T) {
	got, err := coupon.ParseExpiration("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = coupon.ParseExpiration("12/31/2025")
	assert.ErrorIs(t, err, coupon.ErrInvalidExpiration)
}

func TestIsExpiredAt(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, coupon.Coupon{}.IsExpiredAt(now))
	assert.True(t, coupon.Coupon{ExpirationDate: &past}.IsExpiredAt(now))
	assert.False(t, coupon.Coupon{ExpirationDate: &future}.IsExpiredAt(now))
}

func TestCreateInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      coupon.CreateInput
		wantErr error
	}{
		{name: "valid", in: coupon.CreateInput{OfferDetails: "50% off", Store: "s1"}},
		{name: "blank offer details", in: coupon.CreateInput{OfferDetails: "   ", Store: "s1"}, wantErr: coupon.ErrOfferDetailsRequired},
		{name: "missing store", in: coupon.CreateInput{OfferDetails: "50% off"}, wantErr: coupon.ErrStoreRequired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, errs.ErrDomainValidation)
		})
	}
}

func TestNewCreateInputDefaults(t *testing.T) {
	in := coupon.NewCreateInput()
	assert.True(t, in.Active)
	assert.True(t, in.IsValid)
	assert.False(t, in.FeaturedForHome)
}
