package response

import (
	"ifuut-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type QuadraResponse struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Endereco   string `json:"endereco"`
	Descricao  string `json:"descricao"`
	Tipo       string `json:"tipo"`
	Capacidade *int32 `json:"capacidade"`
	Dono       string `json:"dono"`
}

func FromQuadraView(v *queries.QuadraView) *QuadraResponse {
	res := &QuadraResponse{}
	_ = copier.Copy(res, v)
	res.Dono = v.DonoDisplay()
	return res
}

func FromQuadraList(items []*queries.QuadraView) []*QuadraResponse {
	res := make([]*QuadraResponse, len(items))
	for i, it := range items {
		res[i] = FromQuadraView(it)
	}
	return res
}
