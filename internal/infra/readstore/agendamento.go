package readstore

import (
	"context"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/pkg/pgconv"
	"ifuut-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const agendamentoSelect = `SELECT a.id, a.usuario_id, u.username, u.tipo,
	a.data, a.hora, a.duracao_minutos, a.comprovante, a.tipo_pagamento, a.confirmado, a.criado_em,
	` + quadraColumns + `
	FROM agendamentos a
	JOIN users u ON u.id = a.usuario_id
	JOIN quadras q ON q.id = a.quadra_id
	JOIN users d ON d.id = q.dono_id`

type AgendamentoReadStore struct {
	db db.DBTX
}

func NewAgendamentoReadStore(db db.DBTX) *AgendamentoReadStore {
	return &AgendamentoReadStore{db: db}
}

func (r *AgendamentoReadStore) FindByID(ctx context.Context, id int64) (*queries.AgendamentoView, error) {
	row := r.db.QueryRow(ctx, agendamentoSelect+` WHERE a.id = $1`, id)
	v, err := scanAgendamento(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agendamento not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agendamento", err)
	}
	return v, nil
}

func (r *AgendamentoReadStore) List(ctx context.Context, filter queries.AgendamentoFilter) ([]*queries.AgendamentoView, error) {
	var w where
	if filter.UsuarioID != nil {
		w.add("a.usuario_id = " + w.arg(*filter.UsuarioID))
	}
	if filter.Confirmado != nil {
		w.add("a.confirmado = " + w.arg(*filter.Confirmado))
	}
	if filter.Data != "" {
		if d, err := agendamento.ParseDate(filter.Data); err == nil {
			w.add("a.data = " + w.arg(pgconv.DateToPgtype(d.Time())))
		}
	}
	w.search(filter.Search, "q.nome", "u.username")
	sql := agendamentoSelect + w.String() + ` ORDER BY a.data DESC, a.hora DESC, a.id DESC` + w.limit(filter.Limit)

	rows, err := r.db.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agendamentos", err)
	}
	defer rows.Close()

	out := []*queries.AgendamentoView{}
	for rows.Next() {
		v, err := scanAgendamento(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan agendamento", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate agendamentos", err)
	}
	return out, nil
}

func scanAgendamento(row pgx.Row) (*queries.AgendamentoView, error) {
	var (
		v           queries.AgendamentoView
		data        pgtype.Date
		hora        pgtype.Time
		comprovante pgtype.Text
		capacidade  pgtype.Int4
	)
	if err := row.Scan(&v.ID, &v.UsuarioID, &v.UsuarioUsername, &v.UsuarioTipo,
		&data, &hora, &v.DuracaoMinutos, &comprovante, &v.TipoPagamento, &v.Confirmado, &v.CriadoEm,
		&v.Quadra.ID, &v.Quadra.Nome, &v.Quadra.Endereco, &v.Quadra.Descricao, &v.Quadra.Tipo, &capacidade,
		&v.Quadra.DonoID, &v.Quadra.DonoUsername, &v.Quadra.DonoTipo); err != nil {
		return nil, err
	}
	v.Data = agendamento.DateFromTime(data.Time).String()
	h, err := agendamento.HoraFromDuration(pgconv.TimeOfDayFromPgtype(hora))
	if err != nil {
		return nil, err
	}
	v.Hora = h.String()
	v.ComprovanteKey = pgconv.StringPtrFromPgtype(comprovante)
	v.Quadra.Capacidade = pgconv.Int32PtrFromPgtype(capacidade)
	return &v, nil
}
