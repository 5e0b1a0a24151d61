//go:build e2e

package agendamento_test

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"ifuut-api/internal/handler/dto/response"
	"ifuut-api/tests/common/authtest"
	"ifuut-api/tests/common/dbtest"
	"ifuut-api/tests/common/httptest"
	"ifuut-api/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const agendamentosURL = "/api/agendamentos/"

type agendamentoSuite struct {
	e2e.SharedSuite
	memberID    int64
	memberToken string
	otherID     int64
	otherToken  string
	staffToken  string
	quadraID    int64
}

func TestAgendamentoSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(agendamentoSuite))
}

func (s *agendamentoSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.memberID, s.memberToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "joao.silva", "comum", false)
	s.otherID, s.otherToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "maria", "comum", false)
	_, s.staffToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin", "admin", true)
	dono := dbtest.CreateTestUser(s.T(), s.DB, "dono", "associado", false)
	s.quadraID = dbtest.CreateTestQuadra(s.T(), s.DB, dono, "Arena Centro")
}

func itemURL(id int64) string { return fmt.Sprintf("%s%d/", agendamentosURL, id) }

func (s *agendamentoSuite) TestCreate() {
	s.Run("json booking belongs to the caller", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, agendamentosURL, map[string]any{
			"quadra_id":      s.quadraID,
			"data":           "2026-10-20",
			"hora":           "19:30",
			"tipo_pagamento": "pix",
			"usuario_id":     s.otherID,
		}, s.memberToken)

		var created response.AgendamentoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("joao.silva (Comum)", created.Usuario)
		s.Equal("2026-10-20", created.Data)
		s.Equal("19:30:00", created.Hora)
		s.Equal(int32(60), created.DuracaoMinutos)
		s.False(created.Confirmado)
		s.Nil(created.Comprovante)
		s.Require().NotNil(created.Quadra)
		s.Equal("Arena Centro", created.Quadra.Nome)
	})

	s.Run("multipart with a comprovante served from media", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, http.MethodPost, agendamentosURL, map[string]string{
			"quadra_id": strconv.FormatInt(s.quadraID, 10),
			"data":      "2026-10-21",
			"hora":      "08:00",
		}, []httptest.File{{Field: "comprovante", Filename: "recibo.PNG", Content: httptest.PNG}}, s.memberToken)

		var created response.AgendamentoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Require().NotNil(created.Comprovante)
		s.True(strings.HasPrefix(*created.Comprovante, "/media/comprovantes/"), *created.Comprovante)
		s.True(strings.HasSuffix(*created.Comprovante, ".png"))

		file := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, *created.Comprovante, nil, "")
		s.Equal(http.StatusOK, file.Code)
		s.Equal(httptest.PNG, file.Body.Bytes())
	})

	s.Run("unknown quadra", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, agendamentosURL,
			map[string]any{"quadra_id": 999, "data": "2026-10-20", "hora": "19:00"}, s.memberToken)
		httptest.AssertFieldErrors(s.T(), w, "quadra_id")
	})

	s.Run("malformed date", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, agendamentosURL,
			map[string]any{"quadra_id": s.quadraID, "data": "20/10/2026", "hora": "19:00"}, s.memberToken)
		s.Equal(http.StatusBadRequest, w.Code)
		httptest.AssertFieldErrors(s.T(), w, "data")
	})

	s.Run("comprovante must be an image", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, http.MethodPost, agendamentosURL, map[string]string{
			"quadra_id": strconv.FormatInt(s.quadraID, 10),
			"data":      "2026-10-21",
			"hora":      "08:00",
		}, []httptest.File{{Field: "comprovante", Filename: "recibo.png", Content: []byte("plain text")}}, s.memberToken)
		s.Equal(http.StatusBadRequest, w.Code)

		var n int
		s.Require().NoError(s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM agendamentos").Scan(&n))
		s.Zero(n)
	})
}

func (s *agendamentoSuite) TestScoping() {
	s.Run("members only see their own bookings", func() {
		mine := dbtest.CreateTestAgendamento(s.T(), s.DB, s.memberID, s.quadraID, "2026-10-20", "19:00")
		theirs := dbtest.CreateTestAgendamento(s.T(), s.DB, s.otherID, s.quadraID, "2026-10-20", "20:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, agendamentosURL, nil, s.memberToken)
		var items []response.AgendamentoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 1)
		s.Equal(mine, items[0].ID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(theirs), nil, s.memberToken)
		s.Equal(http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(theirs), nil, s.memberToken)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("staff see everything", func() {
		dbtest.CreateTestAgendamento(s.T(), s.DB, s.memberID, s.quadraID, "2026-10-20", "19:00")
		dbtest.CreateTestAgendamento(s.T(), s.DB, s.otherID, s.quadraID, "2026-10-20", "20:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, agendamentosURL, nil, s.staffToken)
		var items []response.AgendamentoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Len(items, 2)
	})

	s.Run("anonymous callers see nothing and cannot write", func() {
		id := dbtest.CreateTestAgendamento(s.T(), s.DB, s.memberID, s.quadraID, "2026-10-20", "19:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, agendamentosURL, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(id), nil, "")
		s.Equal(http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, agendamentosURL,
			map[string]any{"quadra_id": s.quadraID, "data": "2026-10-20", "hora": "19:00"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *agendamentoSuite) TestUpdate() {
	s.Run("patch keeps untouched fields", func() {
		id := dbtest.CreateTestAgendamento(s.T(), s.DB, s.memberID, s.quadraID, "2026-10-20", "19:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, itemURL(id),
			map[string]any{"hora": "21:00", "usuario_id": s.otherID}, s.memberToken)

		var got response.AgendamentoResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("21:00:00", got.Hora)
		s.Equal("2026-10-20", got.Data)
		s.Equal("pix", got.TipoPagamento)
		s.Equal("joao.silva (Comum)", got.Usuario)
	})

	s.Run("owner can delete", func() {
		id := dbtest.CreateTestAgendamento(s.T(), s.DB, s.memberID, s.quadraID, "2026-10-20", "19:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(id), nil, s.memberToken)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(id), nil, s.memberToken)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
