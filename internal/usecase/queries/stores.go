package queries

import (
	"context"

	"coupon-admin/internal/domain/store"
)

type StoreReadStore interface {
	FetchStores(ctx context.Context) ([]store.Store, error)
}

type StoreQueries interface {
	List(ctx context.Context) ([]store.Store, error)
}

type storeQueriesImpl struct {
	readStore StoreReadStore
}

func NewStoreQueries(readStore StoreReadStore) StoreQueries {
	return &storeQueriesImpl{readStore: readStore}
}

func (q *storeQueriesImpl) List(ctx context.Context) ([]store.Store, error) {
	return q.readStore.FetchStores(ctx)
}
