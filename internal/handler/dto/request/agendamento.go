package request

import (
	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/pkg/patch"
	"ifuut-api/internal/usecase/shared"
)

// AgendamentoRequest is the body of POST and PUT, as JSON or multipart. Any usuario field is ignored.
type AgendamentoRequest struct {
	QuadraID       int64          `json:"quadra_id" form:"quadra_id" binding:"required,gt=0"`
	Data           string         `json:"data" form:"data" binding:"required"`
	Hora           string         `json:"hora" form:"hora" binding:"required"`
	DuracaoMinutos *int32         `json:"duracao_minutos" form:"duracao_minutos"`
	TipoPagamento  *string        `json:"tipo_pagamento" form:"tipo_pagamento" binding:"omitempty,max=50"`
	Comprovante    *shared.Upload `json:"-" form:"-"`
}

type PatchAgendamentoRequest struct {
	QuadraID       *int64         `json:"quadra_id" form:"quadra_id" binding:"omitempty,gt=0"`
	Data           *string        `json:"data" form:"data"`
	Hora           *string        `json:"hora" form:"hora"`
	DuracaoMinutos *int32         `json:"duracao_minutos" form:"duracao_minutos"`
	TipoPagamento  *string        `json:"tipo_pagamento" form:"tipo_pagamento" binding:"omitempty,max=50"`
	Comprovante    *shared.Upload `json:"-" form:"-"`
}

func (r *AgendamentoRequest) ToPatch() PatchAgendamentoRequest {
	quadraID, data, hora := r.QuadraID, r.Data, r.Hora
	return PatchAgendamentoRequest{
		QuadraID:       &quadraID,
		Data:           &data,
		Hora:           &hora,
		DuracaoMinutos: r.DuracaoMinutos,
		TipoPagamento:  r.TipoPagamento,
		Comprovante:    r.Comprovante,
	}
}

// Slot validates the scheduling fields, reporting failures per field.
func (r *AgendamentoRequest) Slot() (agendamento.Slot, error) {
	return buildSlot(r.Data, r.Hora, r.DuracaoMinutos)
}

// Apply overlays the patch on current. The stored comprovante key is kept; replacing the file is
// handled by the caller once the new blob is stored.
func (r PatchAgendamentoRequest) Apply(current *agendamento.Agendamento) (int64, agendamento.Slot, agendamento.Payment, error) {
	quadraID := patch.Coalesce(r.QuadraID, current.QuadraID())
	data := patch.Coalesce(r.Data, current.Slot().Data().String())
	hora := patch.Coalesce(r.Hora, current.Slot().Hora().String())
	minutes := current.Slot().DurationMinutes()
	slot, err := buildSlot(data, hora, patch.CoalesceOptional(r.DuracaoMinutos, &minutes))
	if err != nil {
		return 0, agendamento.Slot{}, agendamento.Payment{}, err
	}

	payment, err := agendamento.NewPayment(patch.Coalesce(r.TipoPagamento, current.Payment().Tipo()), current.Payment().Comprovante())
	if err != nil {
		return 0, agendamento.Slot{}, agendamento.Payment{}, errs.Field("tipo_pagamento", err.Error())
	}
	return quadraID, slot, payment, nil
}

func buildSlot(data, hora string, minutes *int32) (agendamento.Slot, error) {
	d, err := agendamento.ParseDate(data)
	if err != nil {
		return agendamento.Slot{}, errs.Field("data", err.Error())
	}
	h, err := agendamento.ParseHora(hora)
	if err != nil {
		return agendamento.Slot{}, errs.Field("hora", err.Error())
	}
	slot, err := agendamento.NewSlot(d, h, minutes)
	if err != nil {
		return agendamento.Slot{}, errs.Field("duracao_minutos", err.Error())
	}
	return slot, nil
}
