package commands

import (
	"context"
	"log/slog"
	"strings"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/id"
	"coupon-admin/internal/pkg/errs"
)

type CouponCommands interface {
	Create(ctx context.Context, in coupon.CreateInput, token string) (*coupon.Coupon, error)
	Delete(ctx context.Context, id string, token string) error
	Track(ctx context.Context, id string) error
	// Deleting reports whether a delete for id is still waiting on the backend.
	Deleting(id string) bool
}

type couponCommandsImpl struct {
	store    CouponWriteStore
	deleting *inFlight
	logger   *slog.Logger
}

func NewCouponCommands(store CouponWriteStore, logger *slog.Logger) CouponCommands {
	return &couponCommandsImpl{store: store, deleting: newInFlight(), logger: logger}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, in coupon.CreateInput, token string) (*coupon.Coupon, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.store.CreateCoupon(ctx, in, token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	uc.logger.Info("Coupon created", slog.String("coupon_id", created.ID), slog.String("store_id", in.Store))
	return created, nil
}

func (uc *couponCommandsImpl) Delete(ctx context.Context, rawID string, token string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	couponID, err := id.Parse(rawID)
	if err != nil {
		return err
	}
	if !uc.deleting.acquire(couponID) {
		return errs.ErrDeleteInProgress
	}
	defer uc.deleting.release(couponID)

	if err := uc.store.DeleteCoupon(ctx, couponID, token); err != nil {
		return errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	uc.logger.Info("Coupon deleted", slog.String("coupon_id", couponID))
	return nil
}

func (uc *couponCommandsImpl) Track(ctx context.Context, rawID string) error {
	couponID, err := id.Parse(rawID)
	if err != nil {
		return err
	}
	if err := uc.store.TrackCoupon(ctx, couponID); err != nil {
		return errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	return nil
}

func (uc *couponCommandsImpl) Deleting(rawID string) bool {
	return uc.deleting.has(strings.ToLower(strings.TrimSpace(rawID)))
}

// requireToken is checked before anything else so a logged-out admin never
// reaches the network.
func requireToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errs.ErrLoginRequired
	}
	return nil
}
