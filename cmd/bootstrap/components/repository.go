package components

import (
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/infra/readstore"
	"ifuut-api/internal/infra/uow"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// RepositoryModule wires the read stores against the pool and the unit of work, which builds
// transaction-bound repositories itself.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewQuadraReadStore,
			fx.As(new(queries.QuadraReadStore)),
		),
		fx.Annotate(
			readstore.NewAgendamentoReadStore,
			fx.As(new(queries.AgendamentoReadStore)),
		),
		fx.Annotate(
			readstore.NewOwnerRequestReadStore,
			fx.As(new(queries.OwnerRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewCountsReadStore,
			fx.As(new(queries.CountsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}
