package response

import (
	"time"

	"ifuut-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AgendamentoResponse struct {
	ID             int64           `json:"id"`
	Usuario        string          `json:"usuario"`
	Quadra         *QuadraResponse `json:"quadra" copier:"-"`
	Data           string          `json:"data"`
	Hora           string          `json:"hora"`
	DuracaoMinutos int32           `json:"duracao_minutos"`
	Comprovante    *string         `json:"comprovante"`
	TipoPagamento  string          `json:"tipo_pagamento"`
	Confirmado     bool            `json:"confirmado"`
	CriadoEm       time.Time       `json:"criado_em"`
}

func FromAgendamentoView(v *queries.AgendamentoView) *AgendamentoResponse {
	res := &AgendamentoResponse{}
	_ = copier.Copy(res, v)
	res.Usuario = v.UsuarioDisplay()
	res.Quadra = FromQuadraView(&v.Quadra)
	res.Comprovante = v.ComprovanteURL
	return res
}

func FromAgendamentoList(items []*queries.AgendamentoView) []*AgendamentoResponse {
	res := make([]*AgendamentoResponse, len(items))
	for i, it := range items {
		res[i] = FromAgendamentoView(it)
	}
	return res
}
