//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NotFound())

	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "conflict"
		_ = c.Error(gin.Error{Err: errors.New("dup"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("lost"))
	})
	r.GET("/detail", func(c *gin.Context) {
		httperr.AbortWithDetail(c, http.StatusInternalServerError, errors.New("db down"), "failed")
	})
	return r
}

func TestErrorHandling(t *testing.T) {
	r := newErrorEngine()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "panic becomes 500", path: "/panic", wantCode: http.StatusInternalServerError, wantBody: `{"error":{"message":"Internal server error"}}`},
		{name: "unwritten public error is rendered", path: "/public", wantCode: http.StatusConflict, wantBody: `{"error":{"message":"conflict"}}`},
		{name: "unwritten private error hides details", path: "/private", wantCode: http.StatusInternalServerError, wantBody: `{"error":{"message":"Internal server error"}}`},
		{name: "detail payload", path: "/detail", wantCode: http.StatusInternalServerError, wantBody: `{"detail":"failed"}`},
		{name: "unknown api route", path: "/api/nope/", wantCode: http.StatusNotFound, wantBody: `{"detail":"Not found."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("unknown page outside the api is plain text", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404 page not found", w.Body.String())
	})
}
