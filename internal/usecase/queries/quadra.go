package queries

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
)

var ErrQuadraNotFound = errs.Mark(errs.New("quadra not found"), errs.ErrQuadraNotFound)

type QuadraReadStore interface {
	FindByID(ctx context.Context, id int64) (*QuadraView, error)
	List(ctx context.Context, filter QuadraFilter) ([]*QuadraView, error)
}

// QuadraQueries are public; venues are readable without authentication.
type QuadraQueries interface {
	Get(ctx context.Context, id int64) (*QuadraView, error)
	List(ctx context.Context, filter QuadraFilter) ([]*QuadraView, error)
}

type quadraQueriesImpl struct {
	store QuadraReadStore
}

func NewQuadraQueries(store QuadraReadStore) QuadraQueries {
	return &quadraQueriesImpl{store: store}
}

func (q *quadraQueriesImpl) Get(ctx context.Context, id int64) (*QuadraView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuadraNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *quadraQueriesImpl) List(ctx context.Context, filter QuadraFilter) ([]*QuadraView, error) {
	return q.store.List(ctx, filter)
}
