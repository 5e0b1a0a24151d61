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

type QuadraHandler struct {
	cmds commands.QuadraCommands
	q    queries.QuadraQueries
}

func NewQuadraHandler(cmds commands.QuadraCommands, q queries.QuadraQueries) *QuadraHandler {
	return &QuadraHandler{cmds: cmds, q: q}
}

// @Summary List quadras
// @Tags quadras
// @Produce json
// @Param search query string false "Matches nome, tipo, endereco or the owner's username"
// @Param tipo query string false "Exact tipo"
// @Success 200 {array} resdto.QuadraResponse
// @Router /api/quadras/ [get]
func (h *QuadraHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), queries.QuadraFilter{
		Search: c.Query("search"),
		Tipo:   c.Query("tipo"),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list quadras", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuadraList(items))
}

// @Summary Get quadra
// @Tags quadras
// @Produce json
// @Param id path int true "Quadra ID"
// @Success 200 {object} resdto.QuadraResponse
// @Failure 404 {object} httperr.Response
// @Router /api/quadras/{id}/ [get]
func (h *QuadraHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrQuadraNotFound, "Not found", "Not found.")
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create quadra
// @Description The caller becomes the owner
// @Tags quadras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuadraRequest true "Quadra"
// @Success 201 {object} resdto.QuadraResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/quadras/ [post]
func (h *QuadraHandler) Create(c *gin.Context) {
	var req reqdto.QuadraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Replace quadra
// @Tags quadras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quadra ID"
// @Param request body reqdto.QuadraRequest true "Quadra"
// @Success 200 {object} resdto.QuadraResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quadras/{id}/ [put]
func (h *QuadraHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrQuadraNotFound, "Not found", "Not found.")
		return
	}
	var req reqdto.QuadraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	h.applyPatch(c, id, req.ToPatch())
}

// @Summary Partially update quadra
// @Tags quadras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quadra ID"
// @Param request body reqdto.PatchQuadraRequest true "Fields to change"
// @Success 200 {object} resdto.QuadraResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quadras/{id}/ [patch]
func (h *QuadraHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrQuadraNotFound, "Not found", "Not found.")
		return
	}
	var req reqdto.PatchQuadraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	h.applyPatch(c, id, req)
}

// @Summary Delete quadra
// @Tags quadras
// @Security BearerAuth
// @Param id path int true "Quadra ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quadras/{id}/ [delete]
func (h *QuadraHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrQuadraNotFound, "Not found", "Not found.")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuadraHandler) applyPatch(c *gin.Context, id int64, req reqdto.PatchQuadraRequest) {
	if err := h.cmds.Update(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *QuadraHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromQuadraView(view))
}
