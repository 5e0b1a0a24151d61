//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertRedirect checks for a 302 pointing at location, the way the admin pages answer forms.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) bool {
	t.Helper()
	if !assert.Equal(t, http.StatusFound, w.Code, "body: %s", w.Body.String()) {
		return false
	}
	return assert.Equal(t, location, w.Header().Get("Location"))
}
