//go:build unit

package agendamento_test

import (
	"strings"
	"testing"
	"time"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/pkg/ptr"
	"ifuut-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgendamento(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		a, err := builder.NewAgendamentoBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "2025-03-15", a.Slot().Data().String())
		assert.Equal(t, "18:30:00", a.Slot().Hora().String())
		assert.Equal(t, int32(90), a.Slot().DurationMinutes())
		assert.False(t, a.Confirmado())
		assert.Equal(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC), a.Slot().End())
	})

	t.Run("duration defaults to sixty minutes", func(t *testing.T) {
		a, err := builder.NewAgendamentoBuilder().WithDuration(nil).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int32(agendamento.DefaultDurationMinutes), a.Slot().DurationMinutes())
	})

	cases := []struct {
		name   string
		mutate func(*builder.AgendamentoBuilder)
		errIs  error
	}{
		{name: "hora with seconds", mutate: func(b *builder.AgendamentoBuilder) { b.WithHora("07:05:30") }},
		{name: "invalid date", mutate: func(b *builder.AgendamentoBuilder) { b.WithData("15/03/2025") }, errIs: agendamento.ErrInvalidDate},
		{name: "invalid hora", mutate: func(b *builder.AgendamentoBuilder) { b.WithHora("25:00") }, errIs: agendamento.ErrInvalidHora},
		{name: "zero duration", mutate: func(b *builder.AgendamentoBuilder) { b.WithDuration(ptr.To(int32(0))) }, errIs: agendamento.ErrInvalidDuration},
		{name: "tipo_pagamento too long", mutate: func(b *builder.AgendamentoBuilder) { b.WithTipoPagamento(strings.Repeat("p", 51)) }, errIs: agendamento.ErrTipoPagamentoTooLong},
		{name: "quadra required", mutate: func(b *builder.AgendamentoBuilder) { b.WithQuadra(0) }, errIs: agendamento.ErrQuadraRequired},
		{name: "usuario required", mutate: func(b *builder.AgendamentoBuilder) { b.WithUsuario(0) }, errIs: agendamento.ErrUsuarioRequired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := builder.NewAgendamentoBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, a)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			require.Nil(t, a)
		})
	}
}

func TestAgendamento_VisibleTo(t *testing.T) {
	a := builder.NewAgendamentoBuilder().WithUsuario(3).BuildPersisted()

	assert.True(t, a.VisibleTo(3, false))
	assert.True(t, a.VisibleTo(1, true))
	assert.False(t, a.VisibleTo(4, false))
}

func TestAgendamento_Confirmation(t *testing.T) {
	a := builder.NewAgendamentoBuilder().BuildPersisted()

	a.Confirm()
	assert.True(t, a.Confirmado())

	a.Unconfirm()
	assert.False(t, a.Confirmado())
}
