package quadra

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrNomeRequired       = errors.New("nome is required")
	ErrNomeTooLong        = errors.New("nome must be at most 255 characters")
	ErrEnderecoTooLong    = errors.New("endereco must be at most 255 characters")
	ErrTipoTooLong        = errors.New("tipo must be at most 100 characters")
	ErrNegativeCapacidade = errors.New("capacidade must not be negative")
	ErrOwnerRequired      = errors.New("dono is required")
)

const (
	MaxNomeLength     = 255
	MaxEnderecoLength = 255
	MaxTipoLength     = 100
)

// Quadra is a bookable sports venue.
type Quadra struct {
	id         int64
	nome       string
	endereco   string
	descricao  string
	tipo       string
	donoID     int64
	capacidade *int32
}

type Details struct {
	Nome       string
	Endereco   string
	Descricao  string
	Tipo       string
	Capacidade *int32
}

func NewQuadra(d Details, donoID int64) (*Quadra, error) {
	q := &Quadra{}
	if err := q.apply(d); err != nil {
		return nil, err
	}
	if donoID <= 0 {
		return nil, ErrOwnerRequired
	}
	q.donoID = donoID
	return q, nil
}

func Reconstruct(id int64, d Details, donoID int64) *Quadra {
	return &Quadra{
		id:         id,
		nome:       d.Nome,
		endereco:   d.Endereco,
		descricao:  d.Descricao,
		tipo:       d.Tipo,
		donoID:     donoID,
		capacidade: d.Capacidade,
	}
}

// Update replaces the editable attributes, validating them as on creation.
func (q *Quadra) Update(d Details) error {
	return q.apply(d)
}

func (q *Quadra) TransferTo(donoID int64) error {
	if donoID <= 0 {
		return ErrOwnerRequired
	}
	q.donoID = donoID
	return nil
}

// CanBeManagedBy reports whether the actor may edit or delete the venue.
func (q *Quadra) CanBeManagedBy(actorID int64, isStaff bool) bool {
	return isStaff || q.donoID == actorID
}

func (q *Quadra) apply(d Details) error {
	nome := strings.TrimSpace(d.Nome)
	switch {
	case nome == "":
		return ErrNomeRequired
	case utf8.RuneCountInString(nome) > MaxNomeLength:
		return ErrNomeTooLong
	case utf8.RuneCountInString(d.Endereco) > MaxEnderecoLength:
		return ErrEnderecoTooLong
	case utf8.RuneCountInString(d.Tipo) > MaxTipoLength:
		return ErrTipoTooLong
	case d.Capacidade != nil && *d.Capacidade < 0:
		return ErrNegativeCapacidade
	}
	q.nome = nome
	q.endereco = strings.TrimSpace(d.Endereco)
	q.descricao = d.Descricao
	q.tipo = strings.TrimSpace(d.Tipo)
	q.capacidade = d.Capacidade
	return nil
}

func (q *Quadra) ID() int64          { return q.id }
func (q *Quadra) Nome() string       { return q.nome }
func (q *Quadra) Endereco() string   { return q.endereco }
func (q *Quadra) Descricao() string  { return q.descricao }
func (q *Quadra) Tipo() string       { return q.tipo }
func (q *Quadra) DonoID() int64      { return q.donoID }
func (q *Quadra) Capacidade() *int32 { return q.capacidade }
func (q *Quadra) Details() Details {
	return Details{Nome: q.nome, Endereco: q.endereco, Descricao: q.descricao, Tipo: q.tipo, Capacidade: q.capacidade}
}
