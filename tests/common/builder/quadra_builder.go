//go:build unit || e2e

package builder

import (
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/pkg/ptr"
)

type QuadraBuilder struct {
	ID         int64
	Nome       string
	Endereco   string
	Descricao  string
	Tipo       string
	DonoID     int64
	Capacidade *int32
}

func NewQuadraBuilder() *QuadraBuilder {
	return &QuadraBuilder{
		ID:         10,
		Nome:       "Quadra Central",
		Endereco:   "Rua das Flores, 100",
		Descricao:  "Grama sintética com iluminação",
		Tipo:       "society",
		DonoID:     1,
		Capacidade: ptr.To(int32(14)),
	}
}

func (b *QuadraBuilder) With(mutate func(*QuadraBuilder)) *QuadraBuilder {
	mutate(b)
	return b
}

func (b *QuadraBuilder) Details() quadra.Details {
	return quadra.Details{
		Nome:       b.Nome,
		Endereco:   b.Endereco,
		Descricao:  b.Descricao,
		Tipo:       b.Tipo,
		Capacidade: b.Capacidade,
	}
}

func (b *QuadraBuilder) BuildDomain() (*quadra.Quadra, error) {
	return quadra.NewQuadra(b.Details(), b.DonoID)
}

func (b *QuadraBuilder) BuildPersisted() *quadra.Quadra {
	return quadra.Reconstruct(b.ID, b.Details(), b.DonoID)
}

func (b *QuadraBuilder) WithNome(nome string) *QuadraBuilder {
	b.Nome = nome
	return b
}

func (b *QuadraBuilder) WithTipo(tipo string) *QuadraBuilder {
	b.Tipo = tipo
	return b
}

func (b *QuadraBuilder) WithEndereco(endereco string) *QuadraBuilder {
	b.Endereco = endereco
	return b
}

func (b *QuadraBuilder) WithDono(id int64) *QuadraBuilder {
	b.DonoID = id
	return b
}

func (b *QuadraBuilder) WithCapacidade(c *int32) *QuadraBuilder {
	b.Capacidade = c
	return b
}
