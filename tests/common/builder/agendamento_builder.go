//go:build unit || e2e

package builder

import (
	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/pkg/ptr"
)

type AgendamentoBuilder struct {
	ID              int64
	UsuarioID       int64
	QuadraID        int64
	Data            string
	Hora            string
	DurationMinutes *int32
	TipoPagamento   string
	Comprovante     *string
	Confirmado      bool
}

func NewAgendamentoBuilder() *AgendamentoBuilder {
	return &AgendamentoBuilder{
		ID:              100,
		UsuarioID:       1,
		QuadraID:        10,
		Data:            "2025-03-15",
		Hora:            "18:30",
		DurationMinutes: ptr.To(int32(90)),
		TipoPagamento:   "pix",
	}
}

func (b *AgendamentoBuilder) With(mutate func(*AgendamentoBuilder)) *AgendamentoBuilder {
	mutate(b)
	return b
}

func (b *AgendamentoBuilder) parts() (agendamento.Slot, agendamento.Payment, error) {
	data, err := agendamento.ParseDate(b.Data)
	if err != nil {
		return agendamento.Slot{}, agendamento.Payment{}, err
	}
	hora, err := agendamento.ParseHora(b.Hora)
	if err != nil {
		return agendamento.Slot{}, agendamento.Payment{}, err
	}
	slot, err := agendamento.NewSlot(data, hora, b.DurationMinutes)
	if err != nil {
		return agendamento.Slot{}, agendamento.Payment{}, err
	}
	payment, err := agendamento.NewPayment(b.TipoPagamento, b.Comprovante)
	if err != nil {
		return agendamento.Slot{}, agendamento.Payment{}, err
	}
	return slot, payment, nil
}

func (b *AgendamentoBuilder) BuildDomain() (*agendamento.Agendamento, error) {
	slot, payment, err := b.parts()
	if err != nil {
		return nil, err
	}
	return agendamento.NewAgendamento(b.UsuarioID, b.QuadraID, slot, payment, fixedNow)
}

// BuildPersisted panics on invalid builder input; use BuildDomain for validation cases.
func (b *AgendamentoBuilder) BuildPersisted() *agendamento.Agendamento {
	slot, payment, err := b.parts()
	if err != nil {
		panic(err)
	}
	return agendamento.Reconstruct(b.ID, b.UsuarioID, b.QuadraID, slot, payment, fixedNow, b.Confirmado)
}

func (b *AgendamentoBuilder) WithUsuario(id int64) *AgendamentoBuilder {
	b.UsuarioID = id
	return b
}

func (b *AgendamentoBuilder) WithQuadra(id int64) *AgendamentoBuilder {
	b.QuadraID = id
	return b
}

func (b *AgendamentoBuilder) WithData(data string) *AgendamentoBuilder {
	b.Data = data
	return b
}

func (b *AgendamentoBuilder) WithHora(hora string) *AgendamentoBuilder {
	b.Hora = hora
	return b
}

func (b *AgendamentoBuilder) WithDuration(minutes *int32) *AgendamentoBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *AgendamentoBuilder) WithTipoPagamento(tipo string) *AgendamentoBuilder {
	b.TipoPagamento = tipo
	return b
}

func (b *AgendamentoBuilder) Confirmed() *AgendamentoBuilder {
	b.Confirmado = true
	return b
}
