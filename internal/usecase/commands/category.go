package commands

import (
	"context"
	"log/slog"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/pkg/errs"
)

type CategoryCommands interface {
	Create(ctx context.Context, in category.CreateInput, token string) (*category.Category, error)
}

type categoryCommandsImpl struct {
	store  CategoryWriteStore
	logger *slog.Logger
}

func NewCategoryCommands(store CategoryWriteStore, logger *slog.Logger) CategoryCommands {
	return &categoryCommandsImpl{store: store, logger: logger}
}

func (uc *categoryCommandsImpl) Create(ctx context.Context, in category.CreateInput, token string) (*category.Category, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.store.CreateCategory(ctx, in, token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBackendOperationFailed)
	}
	uc.logger.Info("Category created", slog.String("category_id", created.ID), slog.String("name", in.Name))
	return created, nil
}
