package repository

import (
	"context"

	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/infra/repository/converter"
	"ifuut-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type QuadraRepository struct {
	db db.DBTX
}

func NewQuadraRepository(db db.DBTX) *QuadraRepository {
	return &QuadraRepository{db: db}
}

func (r *QuadraRepository) Create(ctx context.Context, q *quadra.Quadra) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quadras (nome, endereco, descricao, tipo, dono_id, capacidade)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, converter.QuadraParams(q)...,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create quadra", err)
	}
	return id, nil
}

func (r *QuadraRepository) FindByID(ctx context.Context, id int64) (*quadra.Quadra, error) {
	var (
		d          quadra.Details
		donoID     int64
		capacidade pgtype.Int4
	)
	err := r.db.QueryRow(ctx, `
		SELECT nome, endereco, descricao, tipo, dono_id, capacidade
		FROM quadras WHERE id = $1`, id,
	).Scan(&d.Nome, &d.Endereco, &d.Descricao, &d.Tipo, &donoID, &capacidade)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quadra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quadra", err)
	}
	d.Capacidade = pgconv.Int32PtrFromPgtype(capacidade)
	return quadra.Reconstruct(id, d, donoID), nil
}

func (r *QuadraRepository) Update(ctx context.Context, q *quadra.Quadra) error {
	args := append(converter.QuadraParams(q), q.ID())
	tag, err := r.db.Exec(ctx, `
		UPDATE quadras
		SET nome = $1, endereco = $2, descricao = $3, tipo = $4, dono_id = $5, capacidade = $6
		WHERE id = $7`, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update quadra", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quadra not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuadraRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quadras WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quadra", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quadra not found", nil, infra.KindNotFound)
	}
	return nil
}
