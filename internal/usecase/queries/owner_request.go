package queries

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var ErrOwnerRequestNotFound = errs.Mark(errs.New("owner request not found"), errs.ErrOwnerRequestNotFound)

type OwnerRequestReadStore interface {
	// FindByID returns the request with nested sub-venues and images.
	FindByID(ctx context.Context, id int64) (*OwnerRequestView, error)
	List(ctx context.Context, filter OwnerRequestFilter) ([]*OwnerRequestView, error)
}

type OwnerRequestQueries interface {
	Get(ctx context.Context, actor *shared.Actor, id int64) (*OwnerRequestView, error)
	List(ctx context.Context, actor *shared.Actor, filter OwnerRequestFilter) ([]*OwnerRequestView, error)
}

type ownerRequestQueriesImpl struct {
	store OwnerRequestReadStore
	urls  URLResolver
}

func NewOwnerRequestQueries(store OwnerRequestReadStore, urls URLResolver) OwnerRequestQueries {
	return &ownerRequestQueriesImpl{store: store, urls: urls}
}

func (q *ownerRequestQueriesImpl) Get(ctx context.Context, actor *shared.Actor, id int64) (*OwnerRequestView, error) {
	if actor.IsAnonymous() {
		return nil, ErrOwnerRequestNotFound
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerRequestNotFound
		}
		return nil, err
	}
	if !actor.IsStaff && v.UserID != actor.UserID {
		return nil, ErrOwnerRequestNotFound
	}
	q.resolve(v)
	return v, nil
}

func (q *ownerRequestQueriesImpl) List(ctx context.Context, actor *shared.Actor, filter OwnerRequestFilter) ([]*OwnerRequestView, error) {
	if actor.IsAnonymous() {
		return []*OwnerRequestView{}, nil
	}
	if !actor.IsStaff {
		filter.UserID = &actor.UserID
	}
	items, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		q.resolve(v)
	}
	return items, nil
}

func (q *ownerRequestQueriesImpl) resolve(v *OwnerRequestView) {
	for i := range v.Images {
		v.Images[i].URL = q.urls.URL(v.Images[i].Key)
	}
	for i := range v.Quadras {
		for j := range v.Quadras[i].Images {
			v.Quadras[i].Images[j].URL = q.urls.URL(v.Quadras[i].Images[j].Key)
		}
	}
}
