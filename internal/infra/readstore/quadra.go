package readstore

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/pkg/pgconv"
	"ifuut-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const quadraColumns = `q.id, q.nome, q.endereco, q.descricao, q.tipo, q.capacidade,
	q.dono_id, d.username, d.tipo`

type QuadraReadStore struct {
	db db.DBTX
}

func NewQuadraReadStore(db db.DBTX) *QuadraReadStore {
	return &QuadraReadStore{db: db}
}

func (r *QuadraReadStore) FindByID(ctx context.Context, id int64) (*queries.QuadraView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+quadraColumns+`
		FROM quadras q JOIN users d ON d.id = q.dono_id
		WHERE q.id = $1`, id)
	v, err := scanQuadra(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quadra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quadra", err)
	}
	return v, nil
}

func (r *QuadraReadStore) List(ctx context.Context, filter queries.QuadraFilter) ([]*queries.QuadraView, error) {
	var w where
	w.search(filter.Search, "q.nome", "q.tipo", "q.endereco", "d.username")
	if filter.Tipo != "" {
		w.add("q.tipo = " + w.arg(filter.Tipo))
	}
	order := " ORDER BY q.id"
	if filter.OrderBy == "nome" {
		order = " ORDER BY q.nome, q.id"
	}
	sql := `SELECT ` + quadraColumns + ` FROM quadras q JOIN users d ON d.id = q.dono_id` +
		w.String() + order + w.limit(filter.Limit)

	rows, err := r.db.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quadras", err)
	}
	defer rows.Close()

	out := []*queries.QuadraView{}
	for rows.Next() {
		v, err := scanQuadra(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quadra", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quadras", err)
	}
	return out, nil
}

func scanQuadra(row pgx.Row) (*queries.QuadraView, error) {
	var (
		v          queries.QuadraView
		capacidade pgtype.Int4
	)
	if err := row.Scan(&v.ID, &v.Nome, &v.Endereco, &v.Descricao, &v.Tipo, &capacidade,
		&v.DonoID, &v.DonoUsername, &v.DonoTipo); err != nil {
		return nil, err
	}
	v.Capacidade = pgconv.Int32PtrFromPgtype(capacidade)
	return &v, nil
}
