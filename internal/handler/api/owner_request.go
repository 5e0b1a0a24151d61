package api

import (
	"fmt"
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

type OwnerRequestHandler struct {
	cmds      commands.OwnerRequestCommands
	q         queries.OwnerRequestQueries
	maxUpload int64
}

func NewOwnerRequestHandler(cmds commands.OwnerRequestCommands, q queries.OwnerRequestQueries, cfg config.Config) *OwnerRequestHandler {
	return &OwnerRequestHandler{cmds: cmds, q: q, maxUpload: cfg.Storage.MaxUploadBytes}
}

// @Summary List owner requests
// @Description Newest first. Staff see all, other users their own, anonymous callers none.
// @Tags owner-requests
// @Produce json
// @Success 200 {array} resdto.OwnerRequestResponse
// @Router /api/owner-requests/ [get]
func (h *OwnerRequestHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), middleware.GetActor(c), queries.OwnerRequestFilter{})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list owner requests", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerRequestList(items))
}

// @Summary Get owner request
// @Tags owner-requests
// @Produce json
// @Param id path int true "Owner request ID"
// @Success 200 {object} resdto.OwnerRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/owner-requests/{id}/ [get]
func (h *OwnerRequestHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrOwnerRequestNotFound, "Not found", "Not found.")
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Submit owner request
// @Description JSON or multipart. In multipart bodies "quadras" is a JSON string, "images" attach to the
// @Description request and "quadra_<index>_images" attach to the sub-venue at that index.
// @Tags owner-requests
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OwnerRequestRequest true "Owner request"
// @Success 201 {object} resdto.OwnerRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/owner-requests/ [post]
func (h *OwnerRequestHandler) Create(c *gin.Context) {
	var req reqdto.OwnerRequestRequest
	if err := bindBody(c, &req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if isMultipart(c) {
		req.Quadras = reqdto.ParseSubVenues(c.PostForm("quadras"))
		form, err := c.MultipartForm()
		if err != nil {
			httperr.AbortWithBindError(c, err)
			return
		}
		req.Images = uploadsFrom(form.File["images"])
		req.QuadraImages = subVenueUploads(form)
	}
	if !h.checkSizes(c, req) {
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

func (h *OwnerRequestHandler) checkSizes(c *gin.Context, req reqdto.OwnerRequestRequest) bool {
	if h.maxUpload <= 0 {
		return true
	}
	check := func(field string, uploads []shared.Upload) bool {
		for _, u := range uploads {
			if u.Size > h.maxUpload {
				err := errs.Field(field, "The file is too large.")
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
				return false
			}
		}
		return true
	}
	if !check("images", req.Images) {
		return false
	}
	for idx, uploads := range req.QuadraImages {
		if !check(fmt.Sprintf("quadra_%d_images", idx), uploads) {
			return false
		}
	}
	return true
}

func (h *OwnerRequestHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromOwnerRequestView(view))
}
