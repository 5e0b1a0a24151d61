package queries

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var ErrAgendamentoNotFound = errs.Mark(errs.New("agendamento not found"), errs.ErrAgendamentoNotFound)

type AgendamentoReadStore interface {
	FindByID(ctx context.Context, id int64) (*AgendamentoView, error)
	List(ctx context.Context, filter AgendamentoFilter) ([]*AgendamentoView, error)
}

// URLResolver turns a stored image key into a client-facing URL.
type URLResolver interface {
	URL(key string) string
}

// AgendamentoQueries scope every read to the actor: staff see all, users their own, anonymous nothing.
type AgendamentoQueries interface {
	Get(ctx context.Context, actor *shared.Actor, id int64) (*AgendamentoView, error)
	List(ctx context.Context, actor *shared.Actor, filter AgendamentoFilter) ([]*AgendamentoView, error)
}

type agendamentoQueriesImpl struct {
	store AgendamentoReadStore
	urls  URLResolver
}

func NewAgendamentoQueries(store AgendamentoReadStore, urls URLResolver) AgendamentoQueries {
	return &agendamentoQueriesImpl{store: store, urls: urls}
}

func (q *agendamentoQueriesImpl) Get(ctx context.Context, actor *shared.Actor, id int64) (*AgendamentoView, error) {
	if actor.IsAnonymous() {
		return nil, ErrAgendamentoNotFound
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgendamentoNotFound
		}
		return nil, err
	}
	// out-of-scope rows are reported as missing
	if !actor.IsStaff && v.UsuarioID != actor.UserID {
		return nil, ErrAgendamentoNotFound
	}
	q.resolve(v)
	return v, nil
}

func (q *agendamentoQueriesImpl) List(ctx context.Context, actor *shared.Actor, filter AgendamentoFilter) ([]*AgendamentoView, error) {
	if actor.IsAnonymous() {
		return []*AgendamentoView{}, nil
	}
	if !actor.IsStaff {
		filter.UsuarioID = &actor.UserID
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

func (q *agendamentoQueriesImpl) resolve(v *AgendamentoView) {
	if v.ComprovanteKey != nil && *v.ComprovanteKey != "" {
		url := q.urls.URL(*v.ComprovanteKey)
		v.ComprovanteURL = &url
	}
}
