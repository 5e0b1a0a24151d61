package admin

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ifuut-api/internal/domain/ownerrequest"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/cookie"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	LoginPath = "/admin/login/"
	indexPath = "/admin/"
)

// StaticFS holds the back-office assets, rooted so that admin_custom/... resolves directly.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

type Handler struct {
	auth          commands.AuthCommands
	actions       commands.AdminCommands
	counts        queries.AdminQueries
	users         queries.UserQueries
	quadras       queries.QuadraQueries
	agendamentos  queries.AgendamentoQueries
	ownerRequests queries.OwnerRequestQueries
	site          config.AdminConfig
	cookies       config.CookieConfig
	sessionTTL    time.Duration
	pages         map[string]*template.Template
}

type Deps struct {
	Auth          commands.AuthCommands
	Actions       commands.AdminCommands
	Counts        queries.AdminQueries
	Users         queries.UserQueries
	Quadras       queries.QuadraQueries
	Agendamentos  queries.AgendamentoQueries
	OwnerRequests queries.OwnerRequestQueries
}

func NewHandler(deps Deps, cfg config.Config, sessionTTL time.Duration) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		auth:          deps.Auth,
		actions:       deps.Actions,
		counts:        deps.Counts,
		users:         deps.Users,
		quadras:       deps.Quadras,
		agendamentos:  deps.Agendamentos,
		ownerRequests: deps.OwnerRequests,
		site:          cfg.Admin,
		cookies:       cfg.Cookie,
		sessionTTL:    sessionTTL,
		pages:         pages,
	}, nil
}

var pageNames = []string{"login", "index", "users", "quadras", "agendamentos", "owner_requests", "owner_request_detail"}

func parsePages() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"fmtTime":        func(t time.Time) string { return t.Format("02/01/2006 15:04") },
		"selected":       func(a, b string) bool { return a == b },
		"statusDisplay":  func(s string) string { return ownerrequest.Status(s).Display() },
		"surfaceDisplay": func(s string) string { return ownerrequest.Surface(s).Display() },
		"deref": func(p *int32) string {
			if p == nil {
				return "-"
			}
			return strconv.Itoa(int(*p))
		},
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return pages, nil
}

type page struct {
	Site   config.AdminConfig
	Title  string
	Flash  string
	User   string
	Active string
	Data   any
}

func (h *Handler) render(c *gin.Context, status int, name, title string, data any) {
	p := page{
		Site:   h.site,
		Title:  title,
		Flash:  cookie.PopFlash(c, h.cookies),
		Active: name,
		Data:   data,
	}
	if principal, ok := middleware.GetPrincipal(c); ok {
		p.User = principal.Username
	}
	c.Render(status, render.HTML{Template: h.pages[name], Name: "base.html", Data: p})
}

// LoginForm GET /admin/login/
func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login", "Entrar", gin.H{"Next": c.Query("next"), "Username": "", "Error": ""})
}

// Login POST /admin/login/
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username"`
		Password string `form:"password"`
		Next     string `form:"next"`
	}
	_ = c.ShouldBind(&req)

	result, err := h.auth.Login(c.Request.Context(), reqdto.LoginRequest{Username: req.Username, Password: req.Password})
	if err != nil || !result.IsStaff {
		if err != nil {
			slog.Info("admin login rejected", "username", req.Username, "error", err.Error())
		}
		h.render(c, http.StatusOK, "login", "Entrar", gin.H{
			"Next":     req.Next,
			"Username": req.Username,
			"Error":    "Por favor, insira um usuário e senha corretos para uma conta de equipe.",
		})
		return
	}

	cookie.SetAccessToken(c, h.cookies, result.TokenPair.AccessToken, h.sessionTTL)
	c.Redirect(http.StatusFound, safeNext(req.Next))
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookies)
	c.Redirect(http.StatusFound, LoginPath)
}

type modelCount struct {
	Label string
	Icon  string
	Count int64
	Link  string
}

// Index renders the dashboard. A counter that fails shows 0.
func (h *Handler) Index(c *gin.Context) {
	counts := h.counts.DashboardCounts(c.Request.Context())
	h.render(c, http.StatusOK, "index", h.site.IndexTitle, []modelCount{
		{Label: "Quadras", Icon: "🏟️", Count: counts.Quadras, Link: "/admin/quadras/"},
		{Label: "Agendamentos", Icon: "📅", Count: counts.Agendamentos, Link: "/admin/agendamentos/"},
		{Label: "Usuários", Icon: "🧍", Count: counts.Usuarios, Link: "/admin/users/"},
		{Label: "Solicitações", Icon: "🧾", Count: counts.Solicitacoes, Link: "/admin/owner-requests/"},
	})
}

// safeNext only follows redirects that stay inside the back-office.
func safeNext(next string) string {
	if strings.HasPrefix(next, indexPath) && !strings.HasPrefix(next, "//") {
		return next
	}
	return indexPath
}

func parseBoolFilter(v string) *bool {
	switch v {
	case "1", "true":
		b := true
		return &b
	case "0", "false":
		b := false
		return &b
	}
	return nil
}

func parseIDs(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
