package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/cookie"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const listLimit = 100

type actionOption struct {
	Value string
	Label string
}

var ownerRequestActions = []actionOption{
	{Value: commands.ActionMarkPaid, Label: "✅ Marcar como Pago"},
	{Value: commands.ActionApprove, Label: "🟩 Aprovar e promover usuário (cria Quadras)"},
	{Value: commands.ActionReject, Label: "❌ Rejeitar solicitações"},
}

var agendamentoActions = []actionOption{
	{Value: commands.ActionConfirm, Label: "✔️ Confirmar agendamentos"},
	{Value: commands.ActionUnconfirm, Label: "↩️ Marcar como não confirmados"},
}

var statusOptions = []actionOption{
	{Value: ownerrequest.StatusPending.String(), Label: ownerrequest.StatusPending.Display()},
	{Value: ownerrequest.StatusPaid.String(), Label: ownerrequest.StatusPaid.Display()},
	{Value: ownerrequest.StatusApproved.String(), Label: ownerrequest.StatusApproved.Display()},
	{Value: ownerrequest.StatusRejected.String(), Label: ownerrequest.StatusRejected.Display()},
}

// Users GET /admin/users/
func (h *Handler) Users(c *gin.Context) {
	filter := queries.UserFilter{
		Search:   c.Query("q"),
		Tipo:     c.Query("tipo"),
		IsStaff:  parseBoolFilter(c.Query("is_staff")),
		IsActive: parseBoolFilter(c.Query("is_active")),
		Limit:    listLimit,
	}
	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "users", "Usuários", gin.H{
		"Items":    users,
		"Q":        filter.Search,
		"Tipo":     filter.Tipo,
		"IsStaff":  c.Query("is_staff"),
		"IsActive": c.Query("is_active"),
	})
}

// Quadras GET /admin/quadras/
func (h *Handler) Quadras(c *gin.Context) {
	filter := queries.QuadraFilter{
		Search:  c.Query("q"),
		Tipo:    c.Query("tipo"),
		OrderBy: "nome",
		Limit:   listLimit,
	}
	quadras, err := h.quadras.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "quadras", "Quadras", gin.H{
		"Items": quadras,
		"Q":     filter.Search,
		"Tipo":  filter.Tipo,
	})
}

// Agendamentos GET /admin/agendamentos/
func (h *Handler) Agendamentos(c *gin.Context) {
	filter := queries.AgendamentoFilter{
		Confirmado: parseBoolFilter(c.Query("confirmado")),
		Data:       c.Query("data"),
		Search:     c.Query("q"),
		Limit:      listLimit,
	}
	items, err := h.agendamentos.List(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "agendamentos", "Agendamentos", gin.H{
		"Items":      items,
		"Q":          filter.Search,
		"Data":       filter.Data,
		"Confirmado": c.Query("confirmado"),
		"Actions":    agendamentoActions,
	})
}

// OwnerRequests GET /admin/owner-requests/
func (h *Handler) OwnerRequests(c *gin.Context) {
	filter := queries.OwnerRequestFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
		Limit:  listLimit,
	}
	items, err := h.ownerRequests.List(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "owner_requests", "Solicitações de Proprietário", gin.H{
		"Items":    items,
		"Q":        filter.Search,
		"Status":   filter.Status,
		"Statuses": statusOptions,
		"Actions":  ownerRequestActions,
	})
}

// OwnerRequestDetail GET /admin/owner-requests/:id/
func (h *Handler) OwnerRequestDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.ownerRequests.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "owner_request_detail", view.BusinessName, view)
}

// SaveAdminNotes POST /admin/owner-requests/:id/
func (h *Handler) SaveAdminNotes(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.actions.UpdateAdminNotes(c.Request.Context(), middleware.GetActor(c), id, c.PostForm("admin_notes")); err != nil {
		h.fail(c, err)
		return
	}
	cookie.SetFlash(c, h.cookies, "Observações salvas.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/owner-requests/%d/", id))
}

// OwnerRequestAction POST /admin/owner-requests/actions/
func (h *Handler) OwnerRequestAction(c *gin.Context) {
	action := c.PostForm("action")
	result, err := h.actions.ApplyOwnerRequestAction(c.Request.Context(), middleware.GetActor(c), action, parseIDs(c.PostFormArray("ids")))
	h.finishAction(c, "/admin/owner-requests/", action, result, err)
}

// AgendamentoAction POST /admin/agendamentos/actions/
func (h *Handler) AgendamentoAction(c *gin.Context) {
	action := c.PostForm("action")
	result, err := h.actions.ApplyAgendamentoAction(c.Request.Context(), middleware.GetActor(c), action, parseIDs(c.PostFormArray("ids")))
	h.finishAction(c, "/admin/agendamentos/", action, result, err)
}

func (h *Handler) finishAction(c *gin.Context, back, action string, result *commands.ActionResult, err error) {
	switch {
	case errs.Is(err, commands.ErrUnknownAction):
		cookie.SetFlash(c, h.cookies, "Selecione uma ação válida.")
	case err != nil && result == nil:
		slog.ErrorContext(c.Request.Context(), "admin action failed", "action", action, "error", err.Error())
		cookie.SetFlash(c, h.cookies, "Não foi possível aplicar a ação.")
	default:
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "admin action partially applied", "action", action, "error", err.Error())
		}
		cookie.SetFlash(c, h.cookies, ActionMessage(action, result))
	}
	c.Redirect(http.StatusFound, back)
}

// ActionMessage is the flash shown after a bulk action.
func ActionMessage(action string, result *commands.ActionResult) string {
	var msg string
	switch action {
	case commands.ActionMarkPaid:
		msg = fmt.Sprintf("%d solicitação(ões) marcadas como Pagas.", result.Processed)
	case commands.ActionApprove:
		msg = fmt.Sprintf("%d solicitação(ões) aprovadas e usuários promovidos.", result.Processed)
	case commands.ActionReject:
		msg = fmt.Sprintf("%d solicitação(ões) rejeitadas.", result.Processed)
	case commands.ActionConfirm:
		msg = fmt.Sprintf("%d agendamento(s) confirmados.", result.Processed)
	case commands.ActionUnconfirm:
		msg = fmt.Sprintf("%d agendamento(s) marcados como não confirmados.", result.Processed)
	}
	if n := len(result.Skipped); n > 0 {
		msg += fmt.Sprintf(" %d ignorada(s).", n)
	}
	return msg
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "Não encontrado.")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrOwnerRequestNotFound) {
		c.String(http.StatusNotFound, "Não encontrado.")
		return
	}
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Erro interno.")
}
