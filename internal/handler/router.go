package handler

import (
	"net/http"
	"strings"

	"ifuut-api/internal/handler/admin"
	"ifuut-api/internal/handler/api"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/infra/metrics"
	"ifuut-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Logger  *middleware.Logger
	Metrics *metrics.Metrics
	Auth    *middleware.AuthMiddleware

	AuthHandler         *api.AuthHandler
	UserHandler         *api.UserHandler
	QuadraHandler       *api.QuadraHandler
	AgendamentoHandler  *api.AgendamentoHandler
	OwnerRequestHandler *api.OwnerRequestHandler
	AdminHandler        *api.AdminHandler
	AdminSite           *admin.Handler

	// MediaRoot is empty unless uploads are kept on the local filesystem.
	MediaRoot string `name:"mediaRoot"`
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	httperr.RegisterJSONFieldNames()

	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(p.Metrics.Middleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.NoRoute(middleware.NotFound())
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", p.Metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if p.MediaRoot != "" {
		engine.Static(mediaPrefix(p.Config.Storage.MediaURL), p.MediaRoot)
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.Auth.Authenticate())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/token/", Handler: p.AuthHandler.ObtainToken},
			{Method: http.MethodPost, Path: "/token/refresh/", Handler: p.AuthHandler.RefreshToken},
			{Method: http.MethodPost, Path: "/api-token-auth/", Handler: p.AuthHandler.ObtainAPIToken},
			{Method: http.MethodPost, Path: "/users/", Handler: p.UserHandler.Register},
			{Method: http.MethodGet, Path: "/users/me/", Handler: p.UserHandler.Me, Mw: []gin.HandlerFunc{p.Auth.RequireAuth()}},
			{Method: http.MethodGet, Path: "/admin-counts/", Handler: p.AdminHandler.Counts, Mw: []gin.HandlerFunc{p.Auth.SessionCookie(), p.Auth.RequireStaff()}},
		})

		quadras := apiGroup.Group("/quadras")
		addRoutes(quadras, []route{
			{Method: http.MethodGet, Path: "/", Handler: p.QuadraHandler.List},
			{Method: http.MethodGet, Path: "/:id/", Handler: p.QuadraHandler.Get},
		})
		quadrasAuth := quadras.Group("")
		quadrasAuth.Use(p.Auth.RequireAuth())
		addRoutes(quadrasAuth, []route{
			{Method: http.MethodPost, Path: "/", Handler: p.QuadraHandler.Create},
			{Method: http.MethodPut, Path: "/:id/", Handler: p.QuadraHandler.Update},
			{Method: http.MethodPatch, Path: "/:id/", Handler: p.QuadraHandler.Patch},
			{Method: http.MethodDelete, Path: "/:id/", Handler: p.QuadraHandler.Delete},
		})

		// Reads are open; anonymous callers simply see nothing
		agendamentos := apiGroup.Group("/agendamentos")
		addRoutes(agendamentos, []route{
			{Method: http.MethodGet, Path: "/", Handler: p.AgendamentoHandler.List},
			{Method: http.MethodGet, Path: "/:id/", Handler: p.AgendamentoHandler.Get},
		})
		agendamentosAuth := agendamentos.Group("")
		agendamentosAuth.Use(p.Auth.RequireAuth())
		addRoutes(agendamentosAuth, []route{
			{Method: http.MethodPost, Path: "/", Handler: p.AgendamentoHandler.Create},
			{Method: http.MethodPut, Path: "/:id/", Handler: p.AgendamentoHandler.Update},
			{Method: http.MethodPatch, Path: "/:id/", Handler: p.AgendamentoHandler.Patch},
			{Method: http.MethodDelete, Path: "/:id/", Handler: p.AgendamentoHandler.Delete},
		})

		ownerRequests := apiGroup.Group("/owner-requests")
		addRoutes(ownerRequests, []route{
			{Method: http.MethodGet, Path: "/", Handler: p.OwnerRequestHandler.List},
			{Method: http.MethodGet, Path: "/:id/", Handler: p.OwnerRequestHandler.Get},
			{Method: http.MethodPost, Path: "/", Handler: p.OwnerRequestHandler.Create, Mw: []gin.HandlerFunc{p.Auth.RequireAuth()}},
		})

		adminAPI := apiGroup.Group("/admin")
		adminAPI.Use(p.Auth.RequireStaff())
		addRoutes(adminAPI, []route{
			{Method: http.MethodPost, Path: "/owner-requests/actions/", Handler: p.AdminHandler.OwnerRequestAction},
			{Method: http.MethodPatch, Path: "/owner-requests/:id/", Handler: p.AdminHandler.UpdateAdminNotes},
			{Method: http.MethodPost, Path: "/agendamentos/actions/", Handler: p.AdminHandler.AgendamentoAction},
		})
	}

	setupAdminSite(engine, p)
}

func setupAdminSite(engine *gin.Engine, p RouterParams) {
	site := p.AdminSite
	engine.StaticFS("/static", admin.StaticFS())
	engine.GET(admin.LoginPath, site.LoginForm)
	engine.POST(admin.LoginPath, site.Login)
	engine.POST("/admin/logout/", site.Logout)

	backOffice := engine.Group("/admin")
	backOffice.Use(p.Auth.AdminSession(admin.LoginPath))
	addRoutes(backOffice, []route{
		{Method: http.MethodGet, Path: "/", Handler: site.Index},
		{Method: http.MethodGet, Path: "/users/", Handler: site.Users},
		{Method: http.MethodGet, Path: "/quadras/", Handler: site.Quadras},
		{Method: http.MethodGet, Path: "/agendamentos/", Handler: site.Agendamentos},
		{Method: http.MethodPost, Path: "/agendamentos/actions/", Handler: site.AgendamentoAction},
		{Method: http.MethodGet, Path: "/owner-requests/", Handler: site.OwnerRequests},
		{Method: http.MethodPost, Path: "/owner-requests/actions/", Handler: site.OwnerRequestAction},
		{Method: http.MethodGet, Path: "/owner-requests/:id/", Handler: site.OwnerRequestDetail},
		{Method: http.MethodPost, Path: "/owner-requests/:id/", Handler: site.SaveAdminNotes},
	})
}

func mediaPrefix(mediaURL string) string {
	prefix := "/" + strings.Trim(mediaURL, "/")
	if prefix == "/" {
		return "/media"
	}
	return prefix
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
