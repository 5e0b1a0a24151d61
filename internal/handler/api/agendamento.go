package api

import (
	"net/http"

	reqdto "ifuut-api/internal/handler/dto/request"
	resdto "ifuut-api/internal/handler/dto/response"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AgendamentoHandler struct {
	cmds      commands.AgendamentoCommands
	q         queries.AgendamentoQueries
	maxUpload int64
}

func NewAgendamentoHandler(cmds commands.AgendamentoCommands, q queries.AgendamentoQueries, cfg config.Config) *AgendamentoHandler {
	return &AgendamentoHandler{cmds: cmds, q: q, maxUpload: cfg.Storage.MaxUploadBytes}
}

// @Summary List agendamentos
// @Description Staff see every booking, other users only their own, anonymous callers none
// @Tags agendamentos
// @Produce json
// @Success 200 {array} resdto.AgendamentoResponse
// @Router /api/agendamentos/ [get]
func (h *AgendamentoHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), middleware.GetActor(c), queries.AgendamentoFilter{})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list agendamentos", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgendamentoList(items))
}

// @Summary Get agendamento
// @Tags agendamentos
// @Produce json
// @Param id path int true "Agendamento ID"
// @Success 200 {object} resdto.AgendamentoResponse
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/ [get]
func (h *AgendamentoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrAgendamentoNotFound, "Not found", "Not found.")
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create agendamento
// @Description JSON or multipart. The caller always becomes the owner; comprovante is an optional image file.
// @Tags agendamentos
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AgendamentoRequest true "Booking"
// @Success 201 {object} resdto.AgendamentoResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/agendamentos/ [post]
func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req reqdto.AgendamentoRequest
	if err := bindBody(c, &req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	req.Comprovante = formFile(c, "comprovante")
	if !h.checkSize(c, req.Comprovante) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Replace agendamento
// @Tags agendamentos
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agendamento ID"
// @Param request body reqdto.AgendamentoRequest true "Booking"
// @Success 200 {object} resdto.AgendamentoResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/ [put]
func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrAgendamentoNotFound, "Not found", "Not found.")
		return
	}
	var req reqdto.AgendamentoRequest
	if err := bindBody(c, &req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	req.Comprovante = formFile(c, "comprovante")
	h.applyPatch(c, id, req.ToPatch())
}

// @Summary Partially update agendamento
// @Tags agendamentos
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agendamento ID"
// @Param request body reqdto.PatchAgendamentoRequest true "Fields to change"
// @Success 200 {object} resdto.AgendamentoResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/ [patch]
func (h *AgendamentoHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrAgendamentoNotFound, "Not found", "Not found.")
		return
	}
	var req reqdto.PatchAgendamentoRequest
	if err := bindBody(c, &req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	req.Comprovante = formFile(c, "comprovante")
	h.applyPatch(c, id, req)
}

// @Summary Delete agendamento
// @Tags agendamentos
// @Security BearerAuth
// @Param id path int true "Agendamento ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/ [delete]
func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrAgendamentoNotFound, "Not found", "Not found.")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AgendamentoHandler) applyPatch(c *gin.Context, id int64, req reqdto.PatchAgendamentoRequest) {
	if !h.checkSize(c, req.Comprovante) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *AgendamentoHandler) checkSize(c *gin.Context, u *shared.Upload) bool {
	if u == nil || h.maxUpload <= 0 || u.Size <= h.maxUpload {
		return true
	}
	err := errs.Field("comprovante", "The file is too large.")
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
	return false
}

func (h *AgendamentoHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromAgendamentoView(view))
}
