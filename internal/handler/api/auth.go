package api

import (
	"net/http"

	reqdto "ifuut-api/internal/handler/dto/request"
	resdto "ifuut-api/internal/handler/dto/response"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgNoActiveAccount = "No active account found with the given credentials"

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Obtain JWT pair
// @Description Exchange username and password for an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.TokenPairResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/token/ [post]
func (h *AuthHandler) ObtainToken(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		abortWithAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenPairResponse{
		Access:  result.TokenPair.AccessToken,
		Refresh: result.TokenPair.RefreshToken,
	})
}

// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh token"
// @Success 200 {object} resdto.AccessTokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/token/refresh/ [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	access, err := h.authCommands.RefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", "Token is invalid or expired")
		return
	}

	c.JSON(http.StatusOK, resdto.AccessTokenResponse{Access: access})
}

// @Summary Obtain API token
// @Description Returns the caller's persistent token for the "Authorization: Token <key>" scheme
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.APITokenResponse
// @Failure 400 {object} httperr.Response
// @Router /api/api-token-auth/ [post]
func (h *AuthHandler) ObtainAPIToken(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	token, err := h.authCommands.ObtainAPIToken(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials),
			errs.Is(err, commands.ErrUserInactive),
			errs.Is(err, commands.ErrAuthenticationFailed):
			// the token endpoint reports bad credentials as a validation failure
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid credentials",
				map[string][]string{"non_field_errors": {"Unable to log in with provided credentials."}})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.APITokenResponse{Token: token})
}

func abortWithAuthError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials),
		errs.Is(err, commands.ErrUserInactive),
		errs.Is(err, commands.ErrUserNotFound),
		errs.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", msgNoActiveAccount)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
