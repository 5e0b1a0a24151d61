//go:build e2e

package quadra_test

import (
	"fmt"
	"net/http"
	"testing"

	"ifuut-api/internal/handler/dto/response"
	"ifuut-api/tests/common/authtest"
	"ifuut-api/tests/common/dbtest"
	"ifuut-api/tests/common/httptest"
	"ifuut-api/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const quadrasURL = "/api/quadras/"

type quadraSuite struct {
	e2e.SharedSuite
	ownerID    int64
	ownerToken string
	otherToken string
	staffToken string
}

func TestQuadraSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(quadraSuite))
}

func (s *quadraSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.ownerID, s.ownerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "dono", "associado", false)
	_, s.otherToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "outro", "comum", false)
	_, s.staffToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin", "admin", true)
}

func itemURL(id int64) string { return fmt.Sprintf("%s%d/", quadrasURL, id) }

func (s *quadraSuite) TestPublicRead() {
	s.Run("anonymous can list and filter", func() {
		dbtest.CreateTestQuadra(s.T(), s.DB, s.ownerID, "Arena Centro")
		dbtest.CreateTestQuadra(s.T(), s.DB, s.ownerID, "Quadra Norte")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, quadrasURL+"?search=arena", nil, "")

		var items []response.QuadraResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 1)
		s.Equal("Arena Centro", items[0].Nome)
		s.Equal("dono (Associado)", items[0].Dono)
	})

	s.Run("unknown id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(999), nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *quadraSuite) TestCreate() {
	s.Run("owner is the caller", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quadrasURL, map[string]any{
			"nome":       "Arena Sul",
			"endereco":   "Rua das Flores, 10",
			"tipo":       "Society",
			"capacidade": 14,
			"dono_id":    999,
		}, s.ownerToken)

		var created response.QuadraResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("dono (Associado)", created.Dono)

		var donoID int64
		s.Require().NoError(s.DB.QueryRow(s.T().Context(), "SELECT dono_id FROM quadras WHERE id = $1", created.ID).Scan(&donoID))
		s.Equal(s.ownerID, donoID)
	})

	s.Run("anonymous", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quadrasURL, map[string]any{"nome": "X"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("validation", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quadrasURL, map[string]any{"capacidade": -1}, s.ownerToken)
		s.Equal(http.StatusBadRequest, w.Code)
		httptest.AssertFieldErrors(s.T(), w, "nome", "capacidade")
	})
}

func (s *quadraSuite) TestUpdateAndDelete() {
	s.Run("owner can patch", func() {
		id := dbtest.CreateTestQuadra(s.T(), s.DB, s.ownerID, "Arena")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, itemURL(id), map[string]any{"descricao": "Coberta"}, s.ownerToken)

		var got response.QuadraResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("Coberta", got.Descricao)
		s.Equal("Arena", got.Nome)
	})

	s.Run("another user cannot", func() {
		id := dbtest.CreateTestQuadra(s.T(), s.DB, s.ownerID, "Arena")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, itemURL(id), map[string]any{"nome": "Minha"}, s.otherToken)
		s.Equal(http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(id), nil, s.otherToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("staff can delete, cascading bookings", func() {
		id := dbtest.CreateTestQuadra(s.T(), s.DB, s.ownerID, "Arena")
		dbtest.CreateTestAgendamento(s.T(), s.DB, s.ownerID, id, "2026-10-20", "19:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(id), nil, s.staffToken)
		s.Equal(http.StatusNoContent, w.Code)

		var n int
		s.Require().NoError(s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM agendamentos WHERE quadra_id = $1", id).Scan(&n))
		s.Zero(n)
	})
}
