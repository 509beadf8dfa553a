package queries

import (
	"context"

	"coupon-admin/internal/domain/coupon"
)

type CouponReadStore interface {
	FetchCoupons(ctx context.Context, params coupon.ListParams) ([]coupon.Coupon, error)
}

type CouponQueries interface {
	List(ctx context.Context, params coupon.ListParams) ([]coupon.Coupon, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

// List forwards the filters to the backend. Each call stands alone: when two
// lists race, whichever response the caller renders last wins.
func (q *couponQueriesImpl) List(ctx context.Context, params coupon.ListParams) ([]coupon.Coupon, error) {
	if params.Page < 0 {
		params.Page = 0
	}
	return q.readStore.FetchCoupons(ctx, params)
}
