package request

import (
	"ifuut-api/internal/domain/auth"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Username, r.Password)
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
