package queries

import (
	"context"
	"log/slog"

	"ifuut-api/internal/pkg/errs"
)

var ErrCountsUnavailable = errs.New("failed to load counters")

type CountsReadStore interface {
	Count(ctx context.Context, target CountTarget) (int64, error)
}

// CountsCache is optional; a miss or failure always falls back to the database.
type CountsCache interface {
	Get(ctx context.Context) (*CountsView, bool, error)
	Set(ctx context.Context, counts CountsView) error
}

type AdminQueries interface {
	// Counts fails as a whole if any counter cannot be loaded.
	Counts(ctx context.Context) (*CountsView, error)
	// DashboardCounts never fails; a counter that cannot be loaded shows 0.
	DashboardCounts(ctx context.Context) CountsView
}

type adminQueriesImpl struct {
	store CountsReadStore
	cache CountsCache
}

func NewAdminQueries(store CountsReadStore, cache CountsCache) AdminQueries {
	return &adminQueriesImpl{store: store, cache: cache}
}

func (q *adminQueriesImpl) Counts(ctx context.Context) (*CountsView, error) {
	if cached, ok, err := q.cache.Get(ctx); err != nil {
		slog.WarnContext(ctx, "counters cache read failed", "error", err.Error())
	} else if ok {
		return cached, nil
	}

	var counts CountsView
	for _, target := range AllCountTargets() {
		n, err := q.store.Count(ctx, target)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "count %s", target), ErrCountsUnavailable)
		}
		counts.set(target, n)
	}

	if err := q.cache.Set(ctx, counts); err != nil {
		slog.WarnContext(ctx, "counters cache write failed", "error", err.Error())
	}
	return &counts, nil
}

func (q *adminQueriesImpl) DashboardCounts(ctx context.Context) CountsView {
	var counts CountsView
	for _, target := range AllCountTargets() {
		n, err := q.store.Count(ctx, target)
		if err != nil {
			slog.WarnContext(ctx, "dashboard counter failed", "target", string(target), "error", err.Error())
			n = 0
		}
		counts.set(target, n)
	}
	return counts
}

func (c *CountsView) set(target CountTarget, n int64) {
	switch target {
	case CountQuadras:
		c.Quadras = n
	case CountAgendamentos:
		c.Agendamentos = n
	case CountSolicitacoes:
		c.Solicitacoes = n
	case CountUsuarios:
		c.Usuarios = n
	case CountSolicitacoesPendentes:
		c.SolicitacoesPendentes = n
	}
}
