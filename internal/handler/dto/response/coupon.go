package response

import (
	"time"

	"coupon-admin/internal/domain/coupon"
)

type CouponCard struct {
	ID              string
	OfferDetails    string
	Code            string
	StoreName       string
	StoreURL        string
	StoreImageURL   string
	StoreImageAlt   string
	Active          bool
	IsValid         bool
	FeaturedForHome bool
	Expires         string
	Expired         bool
	Hits            int
	Deleting        bool
}

func FromCoupon(c coupon.Coupon, now time.Time, deleting bool) CouponCard {
	card := CouponCard{
		ID:              c.ID,
		OfferDetails:    c.OfferDetails,
		Code:            c.Code,
		StoreName:       c.Store.DisplayName(),
		StoreURL:        c.Store.TrackingURL,
		StoreImageAlt:   c.Store.ImageAlt(),
		Active:          c.Active,
		IsValid:         c.IsValid,
		FeaturedForHome: c.FeaturedForHome,
		Expired:         c.IsExpiredAt(now),
		Hits:            c.Hits,
		Deleting:        deleting,
	}
	if c.Store.HasImage() {
		card.StoreImageURL = c.Store.Image.URL
	}
	if c.ExpirationDate != nil {
		card.Expires = formatExpiry(*c.ExpirationDate)
	}
	return card
}

// formatExpiry drops the clock for dates that carry no time of day.
func formatExpiry(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}
