package httperr

import (
	"net/http"

	"ifuut-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDetail answers with a bare {"detail": ...} body, hiding err from the client.
func AbortWithDetail(c *gin.Context, status int, err error, detail string) {
	if err != nil {
		_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePrivate})
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// AbortWithBindError answers a request body that failed to bind or validate.
func AbortWithBindError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", ValidationDetail(err))
}

// AbortWithUseCaseError maps the shared sentinel errors to statuses. Handlers check their own
// use-case specific errors first and fall back to this.
func AbortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrInvalidUpload):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", ValidationDetail(err))
	case errs.Is(err, errs.ErrUnauthorized):
		AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", "Authentication credentials were not provided.")
	case errs.Is(err, errs.ErrForbidden), errs.Is(err, errs.ErrStaffRequired):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", "You do not have permission to perform this action.")
	case errs.Is(err, errs.ErrUserNotFound),
		errs.Is(err, errs.ErrQuadraNotFound),
		errs.Is(err, errs.ErrAgendamentoNotFound),
		errs.Is(err, errs.ErrOwnerRequestNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", "Not found.")
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
