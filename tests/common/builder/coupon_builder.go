//go:build unit || e2e

package builder

import (
	"net/url"
	"time"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/store"
)

type CouponBuilder struct {
	ID              string
	OfferDetails    string
	Code            string
	StoreID         string
	StoreName       string
	Active          bool
	IsValid         bool
	FeaturedForHome bool
	ExpirationDate  *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:           "64b7f0c2e1a2b3c4d5e6f7a1",
		OfferDetails: "10% off",
		Code:         "SAVE10",
		StoreID:      "64b7f0c2e1a2b3c4d5e6f701",
		StoreName:    "Acme",
		Active:       true,
		IsValid:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithID(id string) *CouponBuilder {
	b.ID = id
	return b
}

func (b *CouponBuilder) WithOffer(offer string) *CouponBuilder {
	b.OfferDetails = offer
	return b
}

func (b *CouponBuilder) WithExpiration(t time.Time) *CouponBuilder {
	b.ExpirationDate = &t
	return b
}

func (b *CouponBuilder) BuildDomain() coupon.Coupon {
	return coupon.Coupon{
		ID:              b.ID,
		OfferDetails:    b.OfferDetails,
		Code:            b.Code,
		Active:          b.Active,
		IsValid:         b.IsValid,
		FeaturedForHome: b.FeaturedForHome,
		ExpirationDate:  b.ExpirationDate,
		Store: coupon.StoreRef{
			ID:    b.StoreID,
			Name:  b.StoreName,
			Image: &store.Image{URL: "https://img.example/acme.png"},
		},
	}
}

func (b *CouponBuilder) BuildInput() coupon.CreateInput {
	return coupon.CreateInput{
		OfferDetails:    b.OfferDetails,
		Code:            b.Code,
		Store:           b.StoreID,
		Active:          b.Active,
		IsValid:         b.IsValid,
		FeaturedForHome: b.FeaturedForHome,
		ExpirationDate:  b.ExpirationDate,
	}
}

// BuildForm is the create form as a browser posts it: unticked checkboxes
// are absent.
func (b *CouponBuilder) BuildForm() url.Values {
	form := url.Values{
		"offerDetails": {b.OfferDetails},
		"code":         {b.Code},
		"store":        {b.StoreID},
	}
	if b.Active {
		form.Set("active", "true")
	}
	if b.IsValid {
		form.Set("isValid", "true")
	}
	if b.FeaturedForHome {
		form.Set("featuredForHome", "true")
	}
	if b.ExpirationDate != nil {
		form.Set("expirationDate", b.ExpirationDate.Format("2006-01-02T15:04"))
	}
	return form
}
