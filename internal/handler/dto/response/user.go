package response

import (
	"ifuut-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Tipo      string `json:"tipo"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{}
	_ = copier.Copy(res, v)
	return res
}
