package queries

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrUserNotFound)
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
	List(ctx context.Context, filter UserFilter) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	// FindByUsername also returns the password hash for credential checks.
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
	FindByAPIToken(ctx context.Context, key string) (*UserView, error)
	List(ctx context.Context, filter UserFilter) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) List(ctx context.Context, filter UserFilter) ([]*UserView, error) {
	return q.readStore.List(ctx, filter)
}
