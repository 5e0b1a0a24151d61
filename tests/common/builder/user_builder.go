//go:build unit || e2e

package builder

import (
	"time"

	"ifuut-api/internal/domain/user"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
	IsStaff      bool
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Username:     "joao.silva",
		Email:        "joao@example.com",
		FirstName:    "João",
		LastName:     "Silva",
		Role:         "comum",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewOptionalEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewPersonName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, name, role, u.PasswordHash, fixedNow)
}

// BuildPersisted skips creation rules and returns a user as the repository would load it.
func (u *UserBuilder) BuildPersisted() *user.User {
	return user.Reconstruct(u.ID, user.UsernameFromStorage(u.Username), user.EmailFromStorage(u.Email),
		user.PersonName{First: u.FirstName, Last: u.LastName}, user.Role(u.Role), u.PasswordHash,
		u.IsStaff, false, u.IsActive, fixedNow, nil)
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithFirstName(name string) *UserBuilder {
	u.FirstName = name
	return u
}

func (u *UserBuilder) WithLastName(name string) *UserBuilder {
	u.LastName = name
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsStaff() *UserBuilder {
	u.IsStaff = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
