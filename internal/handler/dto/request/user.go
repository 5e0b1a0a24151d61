package request

import (
	"time"

	"ifuut-api/internal/domain/user"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"omitempty,email,max=254"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Tipo      string `json:"tipo" binding:"omitempty,oneof=comum associado admin"`
	Password  string `json:"password" binding:"required"`
}

// Role resolves the requested tier, defaulting to comum. Admin is never self-assignable.
func (r *RegisterRequest) Role() (user.Role, error) {
	if r.Tipo == "" {
		return user.RoleComum, nil
	}
	role, err := user.NewRole(r.Tipo)
	if err != nil {
		return "", err
	}
	if !role.SelfAssignable() {
		return "", user.ErrRoleNotSelfAssignable
	}
	return role, nil
}

func (r *RegisterRequest) ToDomain(passwordHash string, now time.Time) (*user.User, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewOptionalEmail(r.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewPersonName(r.FirstName, r.LastName)
	if err != nil {
		return nil, err
	}
	role, err := r.Role()
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, name, role, passwordHash, now)
}
