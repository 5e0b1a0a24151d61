//go:build unit

package quadra_test

import (
	"strings"
	"testing"

	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/pkg/ptr"
	"ifuut-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadra(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		q, err := builder.NewQuadraBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Quadra Central", q.Nome())
		assert.Equal(t, int64(1), q.DonoID())
		assert.Equal(t, int32(14), *q.Capacidade())
	})

	cases := []struct {
		name   string
		mutate func(*builder.QuadraBuilder)
		errIs  error
	}{
		{name: "nome required", mutate: func(b *builder.QuadraBuilder) { b.WithNome("   ") }, errIs: quadra.ErrNomeRequired},
		{name: "nome too long", mutate: func(b *builder.QuadraBuilder) { b.WithNome(strings.Repeat("n", 256)) }, errIs: quadra.ErrNomeTooLong},
		{name: "endereco too long", mutate: func(b *builder.QuadraBuilder) { b.WithEndereco(strings.Repeat("e", 256)) }, errIs: quadra.ErrEnderecoTooLong},
		{name: "tipo too long", mutate: func(b *builder.QuadraBuilder) { b.WithTipo(strings.Repeat("t", 101)) }, errIs: quadra.ErrTipoTooLong},
		{name: "negative capacidade", mutate: func(b *builder.QuadraBuilder) { b.WithCapacidade(ptr.To(int32(-1))) }, errIs: quadra.ErrNegativeCapacidade},
		{name: "capacidade optional", mutate: func(b *builder.QuadraBuilder) { b.WithCapacidade(nil) }},
		{name: "dono required", mutate: func(b *builder.QuadraBuilder) { b.WithDono(0) }, errIs: quadra.ErrOwnerRequired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := builder.NewQuadraBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, q)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			require.Nil(t, q)
		})
	}
}

func TestQuadra_CanBeManagedBy(t *testing.T) {
	q := builder.NewQuadraBuilder().WithDono(7).BuildPersisted()

	assert.True(t, q.CanBeManagedBy(7, false))
	assert.True(t, q.CanBeManagedBy(99, true))
	assert.False(t, q.CanBeManagedBy(99, false))
}

func TestQuadra_Update(t *testing.T) {
	q := builder.NewQuadraBuilder().BuildPersisted()

	err := q.Update(quadra.Details{Nome: ""})
	require.ErrorIs(t, err, quadra.ErrNomeRequired)
	assert.Equal(t, "Quadra Central", q.Nome(), "failed update must not change state")

	require.NoError(t, q.Update(quadra.Details{Nome: " Arena Norte ", Tipo: "futsal"}))
	assert.Equal(t, "Arena Norte", q.Nome())
	assert.Equal(t, "futsal", q.Tipo())
	assert.Nil(t, q.Capacidade())
}
