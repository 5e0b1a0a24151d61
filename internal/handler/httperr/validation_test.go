//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ifuut-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,max=5"`
	Email    string `json:"email" validate:"omitempty,email"`
	Tipo     string `json:"tipo" validate:"omitempty,oneof=comum associado"`
}

func TestValidationDetail(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	t.Run("validator errors use json names", func(t *testing.T) {
		err := v.Struct(signup{Username: "toolongname", Email: "nope", Tipo: "admin"})
		require.Error(t, err)

		want := map[string][]string{
			"username": {"Ensure this field has no more than 5 characters."},
			"email":    {"Enter a valid email address."},
			"tipo":     {`"admin" is not a valid choice.`},
		}
		if diff := cmp.Diff(want, ValidationDetail(err)); diff != "" {
			t.Errorf("detail mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("required", func(t *testing.T) {
		err := v.Struct(signup{})
		assert.Equal(t, map[string][]string{"username": {"This field is required."}}, ValidationDetail(err))
	})

	t.Run("field errors pass through wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Field("data", "Date has wrong format."), "create agendamento")
		assert.Equal(t, map[string][]string{"data": {"Date has wrong format."}}, ValidationDetail(err))
	})

	t.Run("json type mismatch names the field", func(t *testing.T) {
		var body struct {
			Capacidade int32 `json:"capacidade"`
		}
		err := json.Unmarshal([]byte(`{"capacidade":"muitos"}`), &body)
		assert.Equal(t, map[string][]string{"capacidade": {"A valid int32 is required."}}, ValidationDetail(err))
	})

	t.Run("anything else is a non-field error", func(t *testing.T) {
		assert.Equal(t, map[string][]string{"non_field_errors": {"EOF"}}, ValidationDetail(errors.New("EOF")))
	})
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errs.Field("nome", "This field is required."), http.StatusBadRequest},
		{"upload", errs.Mark(errs.New("not an image"), errs.ErrInvalidUpload), http.StatusBadRequest},
		{"unauthorized", errs.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"staff", errs.ErrStaffRequired, http.StatusForbidden},
		{"quadra missing", errs.Wrap(errs.ErrQuadraNotFound, "get"), http.StatusNotFound},
		{"owner request missing", errs.ErrOwnerRequestNotFound, http.StatusNotFound},
		{"unexpected", errs.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AbortWithUseCaseError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
		})
	}
}
