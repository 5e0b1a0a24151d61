package converter

import (
	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// QuadraParams are the column values shared by insert and update, in column order:
// nome, endereco, descricao, tipo, dono_id, capacidade.
func QuadraParams(q *quadra.Quadra) []any {
	return []any{q.Nome(), q.Endereco(), q.Descricao(), q.Tipo(), q.DonoID(), pgconv.Int4FromPtr(q.Capacidade())}
}

// AgendamentoParams in column order: usuario_id, quadra_id, data, hora, duracao_minutos,
// comprovante, tipo_pagamento, confirmado.
func AgendamentoParams(a *agendamento.Agendamento) []any {
	slot := a.Slot()
	return []any{
		a.UsuarioID(),
		a.QuadraID(),
		pgconv.DateToPgtype(slot.Data().Time()),
		pgconv.TimeOfDayToPgtype(slot.Hora().SinceMidnight()),
		slot.DurationMinutes(),
		pgconv.StringPtrToPgtype(a.Payment().Comprovante()),
		a.Payment().Tipo(),
		a.Confirmado(),
	}
}

// SubVenueParams in column order after owner_request_id.
func SubVenueParams(sv *ownerrequest.SubVenue) []any {
	t := sv.Turf()
	return []any{
		sv.Nome(),
		sv.Tipo(),
		pgconv.Int4FromPtr(sv.Capacidade()),
		t.SurfaceType.String(),
		pgconv.Int4FromPtr(t.PileHeightMM),
		t.InfillType,
		pgconv.Int4FromPtr(t.InfillDepthMM),
		t.ShockpadPresent,
		pgconv.DatePtrToPgtype(t.LastReplacementDate),
		t.MaintenanceFrequency,
		pgconv.Int4FromPtr(t.SurfaceConditionRating),
		t.Certifications,
		sv.Notes(),
	}
}

type AgendamentoRow struct {
	ID             int64
	UsuarioID      int64
	QuadraID       int64
	Data           pgtype.Date
	Hora           pgtype.Time
	DuracaoMinutos int32
	Comprovante    pgtype.Text
	TipoPagamento  string
	CriadoEm       pgtype.Timestamptz
	Confirmado     bool
}

func (r *AgendamentoRow) Dest() []any {
	return []any{&r.ID, &r.UsuarioID, &r.QuadraID, &r.Data, &r.Hora, &r.DuracaoMinutos,
		&r.Comprovante, &r.TipoPagamento, &r.CriadoEm, &r.Confirmado}
}

func AgendamentoFromRow(r AgendamentoRow) (*agendamento.Agendamento, error) {
	hora, err := agendamento.HoraFromDuration(pgconv.TimeOfDayFromPgtype(r.Hora))
	if err != nil {
		return nil, err
	}
	minutes := r.DuracaoMinutos
	slot, err := agendamento.NewSlot(agendamento.DateFromTime(r.Data.Time), hora, &minutes)
	if err != nil {
		return nil, err
	}
	payment, err := agendamento.NewPayment(r.TipoPagamento, pgconv.StringPtrFromPgtype(r.Comprovante))
	if err != nil {
		return nil, err
	}
	return agendamento.Reconstruct(r.ID, r.UsuarioID, r.QuadraID, slot, payment, r.CriadoEm.Time, r.Confirmado), nil
}

type SubVenueRow struct {
	ID                     int64
	Nome                   string
	Tipo                   string
	Capacidade             pgtype.Int4
	SurfaceType            string
	PileHeightMM           pgtype.Int4
	InfillType             string
	InfillDepthMM          pgtype.Int4
	ShockpadPresent        bool
	LastReplacementDate    pgtype.Date
	MaintenanceFrequency   string
	SurfaceConditionRating pgtype.Int4
	Certifications         string
	Notes                  string
}

func (r *SubVenueRow) Dest() []any {
	return []any{&r.ID, &r.Nome, &r.Tipo, &r.Capacidade, &r.SurfaceType, &r.PileHeightMM, &r.InfillType,
		&r.InfillDepthMM, &r.ShockpadPresent, &r.LastReplacementDate, &r.MaintenanceFrequency,
		&r.SurfaceConditionRating, &r.Certifications, &r.Notes}
}

func SubVenueFromRow(r SubVenueRow) *ownerrequest.SubVenue {
	return ownerrequest.ReconstructSubVenue(r.ID, ownerrequest.SubVenueInput{
		Nome:       r.Nome,
		Tipo:       r.Tipo,
		Capacidade: pgconv.Int32PtrFromPgtype(r.Capacidade),
		Turf: ownerrequest.TurfSpec{
			SurfaceType:            ownerrequest.Surface(r.SurfaceType),
			PileHeightMM:           pgconv.Int32PtrFromPgtype(r.PileHeightMM),
			InfillType:             r.InfillType,
			InfillDepthMM:          pgconv.Int32PtrFromPgtype(r.InfillDepthMM),
			ShockpadPresent:        r.ShockpadPresent,
			LastReplacementDate:    pgconv.DatePtrFromPgtype(r.LastReplacementDate),
			MaintenanceFrequency:   r.MaintenanceFrequency,
			SurfaceConditionRating: pgconv.Int32PtrFromPgtype(r.SurfaceConditionRating),
			Certifications:         r.Certifications,
		},
		Notes: r.Notes,
	}, nil)
}
