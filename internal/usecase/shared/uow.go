package shared

import (
	"context"
	"time"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/domain/user"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Users() UserRepository
	APITokens() APITokenRepository
	Quadras() QuadraRepository
	Agendamentos() AgendamentoRepository
	OwnerRequests() OwnerRequestRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	UpdateRole(ctx context.Context, id int64, role user.Role) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type APITokenRepository interface {
	// GetOrCreate stores candidate for the user unless a key already exists, returning the stored key.
	GetOrCreate(ctx context.Context, userID int64, candidate string, now time.Time) (string, error)
}

type QuadraRepository interface {
	Create(ctx context.Context, q *quadra.Quadra) (int64, error)
	FindByID(ctx context.Context, id int64) (*quadra.Quadra, error)
	Update(ctx context.Context, q *quadra.Quadra) error
	Delete(ctx context.Context, id int64) error
}

type AgendamentoRepository interface {
	Create(ctx context.Context, a *agendamento.Agendamento) (int64, error)
	FindByID(ctx context.Context, id int64) (*agendamento.Agendamento, error)
	Update(ctx context.Context, a *agendamento.Agendamento) error
	Delete(ctx context.Context, id int64) error
	SetConfirmed(ctx context.Context, ids []int64, confirmed bool) (int64, error)
}

type OwnerRequestRepository interface {
	// Create inserts the request and its sub-venues, returning the new ids in sub-venue order.
	Create(ctx context.Context, r *ownerrequest.OwnerRequest) (int64, []int64, error)
	AddImage(ctx context.Context, img ownerrequest.Image) (int64, error)
	// LockByID loads the request with its sub-venues and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*ownerrequest.OwnerRequest, error)
	UpdateStatus(ctx context.Context, id int64, status ownerrequest.Status) error
	UpdateAdminNotes(ctx context.Context, id int64, notes string) error
}
