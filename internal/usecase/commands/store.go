package commands

import (
	"context"
	"log/slog"
	"strings"

	"coupon-admin/internal/domain/id"
	"coupon-admin/internal/domain/store"
	"coupon-admin/internal/pkg/errs"
)

type StoreCommands interface {
	Create(ctx context.Context, in store.CreateInput, token string) (*store.Store, error)
	Delete(ctx context.Context, id string, token string) error
	Deleting(id string) bool
}

type storeCommandsImpl struct {
	store    StoreWriteStore
	deleting *inFlight
	logger   *slog.Logger
}

func NewStoreCommands(store StoreWriteStore, logger *slog.Logger) StoreCommands {
	return &storeCommandsImpl{store: store, deleting: newInFlight(), logger: logger}
}

func (uc *storeCommandsImpl) Create(ctx context.Context, in store.CreateInput, token string) (*store.Store, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.store.CreateStore(ctx, in, token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	uc.logger.Info("Store created", slog.String("store_id", created.ID), slog.String("name", in.Name))
	return created, nil
}

func (uc *storeCommandsImpl) Delete(ctx context.Context, rawID string, token string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	storeID, err := id.Parse(rawID)
	if err != nil {
		return err
	}
	if !uc.deleting.acquire(storeID) {
		return errs.ErrDeleteInProgress
	}
	defer uc.deleting.release(storeID)

	if err := uc.store.DeleteStore(ctx, storeID, token); err != nil {
		return errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	uc.logger.Info("Store deleted", slog.String("store_id", storeID))
	return nil
}

func (uc *storeCommandsImpl) Deleting(rawID string) bool {
	return uc.deleting.has(strings.ToLower(strings.TrimSpace(rawID)))
}
