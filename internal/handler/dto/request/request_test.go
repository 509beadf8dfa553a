//go:build unit

package request_test

import (
	"testing"
	"time"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/store"
	"coupon-admin/internal/handler/dto/request"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCouponFormToDomain(t *testing.T) {
	form := request.CreateCouponForm{
		OfferDetails: "50% off",
		Code:         "SAVE50",
		Store:        "64b7f0c2e1a2b3c4d5e6f7aa",
		Active:       true,
		IsValid:      true,
		Expiration:   "2025-12-31",
	}

	in, err := form.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "50% off", in.OfferDetails)
	assert.Equal(t, "SAVE50", in.Code)
	assert.Equal(t, "64b7f0c2e1a2b3c4d5e6f7aa", in.Store)
	assert.True(t, in.Active)
	assert.True(t, in.IsValid)
	assert.False(t, in.FeaturedForHome)
	require.NotNil(t, in.ExpirationDate)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), *in.ExpirationDate)

	form.Expiration = ""
	in, err = form.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, in.ExpirationDate)
}

func TestCreateCouponFormExpiration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"datetime-local keeps the time of day", "2025-12-31T18:30", time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC)},
		{"date only is midnight", "2025-12-31", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"with seconds", "2025-12-31T18:30:15", time.Date(2025, 12, 31, 18, 30, 15, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := request.CreateCouponForm{OfferDetails: "x", Expiration: tt.value}.ToDomain()
			require.NoError(t, err)
			require.NotNil(t, in.ExpirationDate)
			assert.True(t, tt.want.Equal(*in.ExpirationDate), "got %s", in.ExpirationDate)
		})
	}

	t.Run("unparseable value is a validation error", func(t *testing.T) {
		_, err := request.CreateCouponForm{Expiration: "31/12/2025"}.ToDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidExpiration)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestCreateStoreFormToDomain(t *testing.T) {
	form := request.CreateStoreForm{
		Name:             "Acme",
		TrackingURL:      "https://acme.example",
		ShortDescription: "Tools",
		ImageURL:         "https://img.example/a.png",
		ImageAlt:         "logo",
		CategoryIDs:      "c1, c2",
		MetaTitle:        "Acme Coupons",
		IsTopStore:       true,
	}

	in, err := form.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "Acme", in.Name)
	assert.Equal(t, "https://acme.example", in.TrackingURL)
	assert.True(t, in.IsTopStore)
	assert.Equal(t, []string{"c1", "c2"}, in.Categories)
	assert.Equal(t, &store.Image{URL: "https://img.example/a.png", Alt: "logo"}, in.Image)
	assert.Equal(t, "Acme Coupons", in.SEO.MetaTitle)

	require.NoError(t, in.Validate())
}

func TestCreateCategoryFormToDomain(t *testing.T) {
	in, err := request.CreateCategoryForm{Name: "Travel", Order: ptr.Of(2)}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "Travel", in.Name)
	assert.Equal(t, ptr.Of(false), in.Active)
	assert.Equal(t, ptr.Of(2), in.Order)
}

func TestListCategoriesQueryToParams(t *testing.T) {
	assert.Nil(t, request.ListCategoriesQuery{}.ToParams().Active)
	assert.Equal(t, ptr.Of(true), request.ListCategoriesQuery{Active: "true"}.ToParams().Active)
	assert.Equal(t, ptr.Of(false), request.ListCategoriesQuery{Page: 2, Active: "false"}.ToParams().Active)
}
