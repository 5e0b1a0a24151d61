package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal = "Internal server error"
	stackLines  = 20
)

// ErrorHandler renders the last public error left by a handler that did not write a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = errs.Newf("panic: %v", rec)
				}
				slog.Error("recovered from panic",
					"error", err.Error(),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(errs.Wrap(err, "recovered"), stackLines),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown API routes with JSON; everything else gets gin's plain 404.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = msgInternal
	return resp
}
