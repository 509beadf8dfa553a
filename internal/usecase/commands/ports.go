package commands

import (
	"context"
	"time"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/store"
)

// Write-side ports. The backend client implements all of them; commands only
// see the calls they make.

type CouponWriteStore interface {
	CreateCoupon(ctx context.Context, in coupon.CreateInput, token string) (*coupon.Coupon, error)
	DeleteCoupon(ctx context.Context, id string, token string) error
	TrackCoupon(ctx context.Context, id string) error
}

type StoreWriteStore interface {
	CreateStore(ctx context.Context, in store.CreateInput, token string) (*store.Store, error)
	DeleteStore(ctx context.Context, id string, token string) error
}

type CategoryWriteStore interface {
	CreateCategory(ctx context.Context, in category.CreateInput, token string) (*category.Category, error)
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenInspector reads the expiry of a backend-issued token.
type TokenInspector interface {
	ExpiresAt(token string) (time.Time, bool)
}
