package repository

import (
	"context"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/infra/repository/converter"
	"ifuut-api/internal/pkg/pgconv"
)

type AgendamentoRepository struct {
	db db.DBTX
}

func NewAgendamentoRepository(db db.DBTX) *AgendamentoRepository {
	return &AgendamentoRepository{db: db}
}

func (r *AgendamentoRepository) Create(ctx context.Context, a *agendamento.Agendamento) (int64, error) {
	args := append(converter.AgendamentoParams(a), a.CriadoEm())
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO agendamentos (usuario_id, quadra_id, data, hora, duracao_minutos,
			comprovante, tipo_pagamento, confirmado, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`, args...,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create agendamento", err)
	}
	return id, nil
}

func (r *AgendamentoRepository) FindByID(ctx context.Context, id int64) (*agendamento.Agendamento, error) {
	var row converter.AgendamentoRow
	err := r.db.QueryRow(ctx, `
		SELECT id, usuario_id, quadra_id, data, hora, duracao_minutos,
			comprovante, tipo_pagamento, criado_em, confirmado
		FROM agendamentos WHERE id = $1`, id,
	).Scan(row.Dest()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agendamento not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agendamento", err)
	}
	a, err := converter.AgendamentoFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt agendamento row", err)
	}
	return a, nil
}

func (r *AgendamentoRepository) Update(ctx context.Context, a *agendamento.Agendamento) error {
	args := append(converter.AgendamentoParams(a), a.ID())
	tag, err := r.db.Exec(ctx, `
		UPDATE agendamentos
		SET usuario_id = $1, quadra_id = $2, data = $3, hora = $4, duracao_minutos = $5,
			comprovante = $6, tipo_pagamento = $7, confirmado = $8
		WHERE id = $9`, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update agendamento", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("agendamento not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AgendamentoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM agendamentos WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete agendamento", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("agendamento not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AgendamentoRepository) SetConfirmed(ctx context.Context, ids []int64, confirmed bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, `UPDATE agendamentos SET confirmado = $2 WHERE id = ANY($1)`, ids, confirmed)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set agendamento confirmation", err)
	}
	return tag.RowsAffected(), nil
}
