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

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Public sign-up. tipo may be comum or associado.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "New user"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users/ [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/ [get]
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Authentication required", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
