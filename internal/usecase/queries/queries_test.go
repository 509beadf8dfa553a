//go:build unit

package queries_test

import (
	"context"
	"testing"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/store"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/queries"
	"coupon-admin/tests/common/builder"
	queriesmock "coupon-admin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockStoreReadStore(ctrl)
	q := queries.NewStoreQueries(readStore)

	want := []store.Store{builder.NewStoreBuilder().BuildDomain()}
	readStore.EXPECT().FetchStores(gomock.Any()).Return(want, nil)

	got, err := q.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCouponQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockCouponReadStore(ctrl)
	q := queries.NewCouponQueries(readStore)

	t.Run("forwards filters", func(t *testing.T) {
		params := coupon.ListParams{Filter: coupon.Filter{Store: "s1", IsValid: true}, Page: 2}
		readStore.EXPECT().FetchCoupons(gomock.Any(), params).Return([]coupon.Coupon{builder.NewCouponBuilder().BuildDomain()}, nil)

		got, err := q.List(context.Background(), params)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("negative page leaves paging to the backend", func(t *testing.T) {
		readStore.EXPECT().FetchCoupons(gomock.Any(), coupon.ListParams{}).Return(nil, nil)

		_, err := q.List(context.Background(), coupon.ListParams{Page: -3})
		require.NoError(t, err)
	})
}

func TestCategoryQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockCategoryReadStore(ctrl)
	q := queries.NewCategoryQueries(readStore)

	t.Run("list normalizes params", func(t *testing.T) {
		readStore.EXPECT().FetchCategories(gomock.Any(), category.ListParams{Page: 1, Limit: category.MaxLimit}).
			Return(&category.Page{}, nil)

		_, err := q.List(context.Background(), category.ListParams{Limit: 1000})
		require.NoError(t, err)
	})

	t.Run("get lower-cases the id", func(t *testing.T) {
		cat := builder.NewCategoryBuilder().BuildDomain()
		readStore.EXPECT().GetCategory(gomock.Any(), cat.ID).Return(&cat, nil)

		got, err := q.Get(context.Background(), "64B7F0C2E1A2B3C4D5E6F7C1")
		require.NoError(t, err)
		assert.Equal(t, cat.Name, got.Name)
	})

	t.Run("get rejects malformed ids without a call", func(t *testing.T) {
		_, err := q.Get(context.Background(), "electronics")
		assert.True(t, errs.Is(err, errs.ErrInvalidID))
	})

	t.Run("not found is marked", func(t *testing.T) {
		readStore.EXPECT().GetCategory(gomock.Any(), gomock.Any()).
			Return(nil, infra.GatewayError{Kind: infra.KindNotFound, Status: 404, Message: "Category not found"})

		_, err := q.Get(context.Background(), "64b7f0c2e1a2b3c4d5e6f7c2")
		assert.True(t, errs.Is(err, queries.ErrCategoryNotFound))
		assert.Equal(t, "Category not found", infra.Message(err, ""))
	})
}
