package components

import (
	"ifuut-api/internal/handler"
	"ifuut-api/internal/handler/admin"
	"ifuut-api/internal/handler/api"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/jwt"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewQuadraHandler,
		api.NewAgendamentoHandler,
		api.NewOwnerRequestHandler,
		api.NewAdminHandler,
		NewAdminSite,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type AdminSiteParams struct {
	fx.In

	Config        config.Config
	JWT           *jwt.Service
	Auth          commands.AuthCommands
	Actions       commands.AdminCommands
	Counts        queries.AdminQueries
	Users         queries.UserQueries
	Quadras       queries.QuadraQueries
	Agendamentos  queries.AgendamentoQueries
	OwnerRequests queries.OwnerRequestQueries
}

// NewAdminSite builds the back-office; its session cookie lives as long as an access token.
func NewAdminSite(p AdminSiteParams) (*admin.Handler, error) {
	return admin.NewHandler(admin.Deps{
		Auth:          p.Auth,
		Actions:       p.Actions,
		Counts:        p.Counts,
		Users:         p.Users,
		Quadras:       p.Quadras,
		Agendamentos:  p.Agendamentos,
		OwnerRequests: p.OwnerRequests,
	}, p.Config, p.JWT.AccessTokenDuration())
}
