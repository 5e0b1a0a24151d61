//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"ifuut-api/internal/handler/dto/request"
	"ifuut-api/tests/common/dbtest"
	"ifuut-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser obtains a JWT pair and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/token/",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Access, "access token missing from response")
	return body.Access
}

func CreateAndLogin(t *testing.T, db dbtest.DB, router *gin.Engine, username, tipo string, staff bool) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, username, tipo, staff)
	return id, LoginUser(t, router, username, dbtest.DefaultPassword)
}

// AdminSessionCookies logs into the back-office and returns the session cookies.
func AdminSessionCookies(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformForm(t, router, http.MethodPost, "/admin/login/", map[string][]string{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, c, "session cookie not set")
	return []*http.Cookie{c}
}
