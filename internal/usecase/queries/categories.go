package queries

import (
	"context"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/domain/id"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryReadStore interface {
	FetchCategories(ctx context.Context, params category.ListParams) (*category.Page, error)
	GetCategory(ctx context.Context, id string) (*category.Category, error)
}

type CategoryQueries interface {
	List(ctx context.Context, params category.ListParams) (*category.Page, error)
	Get(ctx context.Context, id string) (*category.Category, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context, params category.ListParams) (*category.Page, error) {
	return q.readStore.FetchCategories(ctx, params.Normalize())
}

func (q *categoryQueriesImpl) Get(ctx context.Context, rawID string) (*category.Category, error) {
	categoryID, err := id.Parse(rawID)
	if err != nil {
		return nil, err
	}
	found, err := q.readStore.GetCategory(ctx, categoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, err
	}
	return found, nil
}
