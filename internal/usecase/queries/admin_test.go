//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/queries"
	queriesmock "ifuut-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var storedCounts = map[queries.CountTarget]int64{
	queries.CountQuadras:               4,
	queries.CountAgendamentos:          9,
	queries.CountSolicitacoes:          3,
	queries.CountUsuarios:              12,
	queries.CountSolicitacoesPendentes: 2,
}

func expectStoreCounts(store *queriesmock.MockCountsReadStore) {
	store.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, target queries.CountTarget) (int64, error) {
			return storedCounts[target], nil
		}).Times(len(storedCounts))
}

func TestCounts(t *testing.T) {
	want := &queries.CountsView{Quadras: 4, Agendamentos: 9, Solicitacoes: 3, Usuarios: 12, SolicitacoesPendentes: 2}

	t.Run("a cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCountsReadStore(ctrl)
		cache := queriesmock.NewMockCountsCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(want, true, nil)

		got, err := queries.NewAdminQueries(store, cache).Counts(context.Background())

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("a miss loads every counter and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCountsReadStore(ctrl)
		cache := queriesmock.NewMockCountsCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, false, nil)
		expectStoreCounts(store)
		cache.EXPECT().Set(gomock.Any(), *want).Return(nil)

		got, err := queries.NewAdminQueries(store, cache).Counts(context.Background())

		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cache failures fall back to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCountsReadStore(ctrl)
		cache := queriesmock.NewMockCountsCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, false, assert.AnError)
		expectStoreCounts(store)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(assert.AnError)

		got, err := queries.NewAdminQueries(store, cache).Counts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(12), got.Usuarios)
	})

	t.Run("one failing counter fails the whole response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCountsReadStore(ctrl)
		cache := queriesmock.NewMockCountsCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, false, nil)
		store.EXPECT().Count(gomock.Any(), queries.CountQuadras).Return(int64(4), nil)
		store.EXPECT().Count(gomock.Any(), queries.CountAgendamentos).Return(int64(0), assert.AnError)

		got, err := queries.NewAdminQueries(store, cache).Counts(context.Background())

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, queries.ErrCountsUnavailable))
	})
}

func TestDashboardCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCountsReadStore(ctrl)
	cache := queriesmock.NewMockCountsCache(ctrl)
	store.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, target queries.CountTarget) (int64, error) {
			if target == queries.CountUsuarios {
				return 0, assert.AnError
			}
			return storedCounts[target], nil
		}).Times(len(storedCounts))

	got := queries.NewAdminQueries(store, cache).DashboardCounts(context.Background())

	assert.Equal(t, int64(0), got.Usuarios, "a failing counter shows zero")
	assert.Equal(t, int64(4), got.Quadras)
	assert.Equal(t, int64(2), got.SolicitacoesPendentes)
}
