package request

import (
	"strings"

	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/pkg/patch"
)

// QuadraRequest is the body of POST and PUT. Optional fields left out keep their current value on PUT.
type QuadraRequest struct {
	Nome       string  `json:"nome" binding:"required,max=255"`
	Endereco   *string `json:"endereco" binding:"omitempty,max=255"`
	Descricao  *string `json:"descricao"`
	Tipo       *string `json:"tipo" binding:"omitempty,max=100"`
	Capacidade *int32  `json:"capacidade" binding:"omitempty,min=0"`
	DonoID     *int64  `json:"dono_id" binding:"omitempty,gt=0"`
}

type PatchQuadraRequest struct {
	Nome       *string `json:"nome" binding:"omitempty,max=255"`
	Endereco   *string `json:"endereco" binding:"omitempty,max=255"`
	Descricao  *string `json:"descricao"`
	Tipo       *string `json:"tipo" binding:"omitempty,max=100"`
	Capacidade *int32  `json:"capacidade" binding:"omitempty,min=0"`
	DonoID     *int64  `json:"dono_id" binding:"omitempty,gt=0"`
}

func (r *QuadraRequest) ToPatch() PatchQuadraRequest {
	nome := r.Nome
	return PatchQuadraRequest{
		Nome:       &nome,
		Endereco:   r.Endereco,
		Descricao:  r.Descricao,
		Tipo:       r.Tipo,
		Capacidade: r.Capacidade,
		DonoID:     r.DonoID,
	}
}

func (r *QuadraRequest) ToDomain(donoID int64) (*quadra.Quadra, error) {
	return quadra.NewQuadra(r.ToPatch().Apply(quadra.Details{}), donoID)
}

// Apply overlays the fields present in the patch on current.
func (r PatchQuadraRequest) Apply(current quadra.Details) quadra.Details {
	return quadra.Details{
		Nome:       strings.TrimSpace(patch.Coalesce(r.Nome, current.Nome)),
		Endereco:   patch.Coalesce(r.Endereco, current.Endereco),
		Descricao:  patch.Coalesce(r.Descricao, current.Descricao),
		Tipo:       patch.Coalesce(r.Tipo, current.Tipo),
		Capacidade: patch.CoalesceOptional(r.Capacidade, current.Capacidade),
	}
}
