package api

import (
	"net/http"

	reqdto "ifuut-api/internal/handler/dto/request"
	resdto "ifuut-api/internal/handler/dto/response"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgCountersFailed = "failed to load counters"

type AdminHandler struct {
	cmds          commands.AdminCommands
	q             queries.AdminQueries
	ownerRequests queries.OwnerRequestQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries, ownerRequests queries.OwnerRequestQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q, ownerRequests: ownerRequests}
}

// @Summary Dashboard counters
// @Description Staff only
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.CountsView
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} map[string]string
// @Router /api/admin-counts/ [get]
func (h *AdminHandler) Counts(c *gin.Context) {
	counts, err := h.q.Counts(c.Request.Context())
	if err != nil {
		httperr.AbortWithDetail(c, http.StatusInternalServerError, err, msgCountersFailed)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Bulk owner-request action
// @Description action is mark_paid, approve_request or reject_request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminActionRequest true "Action and ids"
// @Success 200 {object} commands.ActionResult
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response "detail carries the partial result"
// @Router /api/admin/owner-requests/actions/ [post]
func (h *AdminHandler) OwnerRequestAction(c *gin.Context) {
	var req reqdto.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.ApplyOwnerRequestAction(c.Request.Context(), middleware.GetActor(c), req.Action, req.IDs)
	if err != nil {
		abortWithActionError(c, err, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Bulk agendamento action
// @Description action is confirm or unconfirm
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminActionRequest true "Action and ids"
// @Success 200 {object} commands.ActionResult
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/agendamentos/actions/ [post]
func (h *AdminHandler) AgendamentoAction(c *gin.Context) {
	var req reqdto.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.ApplyAgendamentoAction(c.Request.Context(), middleware.GetActor(c), req.Action, req.IDs)
	if err != nil {
		abortWithActionError(c, err, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Update admin notes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Owner request ID"
// @Param request body reqdto.AdminNotesRequest true "Notes"
// @Success 200 {object} resdto.OwnerRequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/owner-requests/{id}/ [patch]
func (h *AdminHandler) UpdateAdminNotes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrOwnerRequestNotFound, "Not found", "Not found.")
		return
	}
	var req reqdto.AdminNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	actor := middleware.GetActor(c)
	if err := h.cmds.UpdateAdminNotes(c.Request.Context(), actor, id, req.AdminNotes); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.ownerRequests.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerRequestView(view))
}

// abortWithActionError keeps a partial result in the detail: ids handled before the failure stay committed.
func abortWithActionError(c *gin.Context, err error, partial *commands.ActionResult) {
	switch {
	case errs.Is(err, commands.ErrUnknownAction):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown action",
			map[string][]string{"action": {"Unknown action."}})
	case partial != nil:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Action partially applied", partial)
	default:
		httperr.AbortWithUseCaseError(c, err)
	}
}
