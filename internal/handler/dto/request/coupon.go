package request

import (
	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// CreateCouponForm is the coupon create form. Checkboxes post "true" when
// ticked and nothing otherwise.
type CreateCouponForm struct {
	OfferDetails    string `form:"offerDetails" binding:"max=500"`
	Code            string `form:"code" binding:"max=64"`
	Store           string `form:"store" binding:"omitempty,mongodb"`
	Active          bool   `form:"active"`
	IsValid         bool   `form:"isValid"`
	FeaturedForHome bool   `form:"featuredForHome"`
	// Expiration is a datetime-local value; a bare date is accepted too.
	Expiration string `form:"expirationDate"`
	// From is the list query string to return to.
	From string `form:"from"`
}

func (f CreateCouponForm) ToDomain() (coupon.CreateInput, error) {
	var in coupon.CreateInput
	if err := copier.Copy(&in, &f); err != nil {
		return coupon.CreateInput{}, errs.Wrap(err, "copy coupon form")
	}
	exp, err := coupon.ParseExpiration(f.Expiration)
	if err != nil {
		return coupon.CreateInput{}, err
	}
	in.ExpirationDate = exp
	return in, nil
}
