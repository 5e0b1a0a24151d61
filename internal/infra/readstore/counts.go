package readstore

import (
	"context"
	"fmt"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/usecase/queries"
)

var countSQL = map[queries.CountTarget]string{
	queries.CountQuadras:               `SELECT COUNT(*) FROM quadras`,
	queries.CountAgendamentos:          `SELECT COUNT(*) FROM agendamentos`,
	queries.CountSolicitacoes:          `SELECT COUNT(*) FROM owner_requests`,
	queries.CountUsuarios:              `SELECT COUNT(*) FROM users`,
	queries.CountSolicitacoesPendentes: `SELECT COUNT(*) FROM owner_requests WHERE status = 'pending'`,
}

type CountsReadStore struct {
	db db.DBTX
}

func NewCountsReadStore(db db.DBTX) *CountsReadStore {
	return &CountsReadStore{db: db}
}

func (r *CountsReadStore) Count(ctx context.Context, target queries.CountTarget) (int64, error) {
	sql, ok := countSQL[target]
	if !ok {
		return 0, infra.WrapRepoErr(fmt.Sprintf("unknown counter %q", target), nil)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count "+string(target), err)
	}
	return n, nil
}
