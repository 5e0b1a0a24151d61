//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"ifuut-api/internal/handler/api"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/cookie"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/internal/usecase/shared"
	"ifuut-api/tests/common/httptest"
	commandsmock "ifuut-api/tests/mock/commands"
	queriesmock "ifuut-api/tests/mock/queries"
	usecasemock "ifuut-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	staffToken  = "staff-token"
	memberToken = "member-token"
)

var (
	staffPrincipal  = &usecase.Principal{UserID: 1, Username: "admin", Tipo: "admin", IsStaff: true}
	memberPrincipal = &usecase.Principal{UserID: 2, Username: "joao.silva", Tipo: "comum"}
)

// expectTokens lets the mocked validator accept the two fixed bearer tokens used across handler tests.
func expectTokens(v *usecasemock.MockTokenValidator) {
	v.EXPECT().ValidateAccessToken(gomock.Any(), staffToken).Return(staffPrincipal, nil).AnyTimes()
	v.EXPECT().ValidateAccessToken(gomock.Any(), memberToken).Return(memberPrincipal, nil).AnyTimes()
	v.EXPECT().ValidateAccessToken(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidToken).AnyTimes()
}

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAdminCommands
	mockQueries   *queriesmock.MockAdminQueries
	mockRequests  *queriesmock.MockOwnerRequestQueries
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockRequests = queriesmock.NewMockOwnerRequestQueries(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	expectTokens(s.mockValidator)

	h := api.NewAdminHandler(s.mockCommands, s.mockQueries, s.mockRequests)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	apiGroup := s.router.Group("/api", auth.Authenticate())
	apiGroup.GET("/admin-counts/", auth.SessionCookie(), auth.RequireStaff(), h.Counts)
	adminGroup := apiGroup.Group("/admin", auth.RequireStaff())
	adminGroup.POST("/owner-requests/actions/", h.OwnerRequestAction)
	adminGroup.PATCH("/owner-requests/:id/", h.UpdateAdminNotes)
	adminGroup.POST("/agendamentos/actions/", h.AgendamentoAction)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCounts() {
	url := "/api/admin-counts/"

	s.Run("success: staff receives the five counters", func() {
		s.mockQueries.EXPECT().Counts(gomock.Any()).Return(&queries.CountsView{
			Quadras: 3, Agendamentos: 7, Solicitacoes: 2, Usuarios: 11, SolicitacoesPendentes: 1,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, staffToken)

		var got map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := map[string]int64{
			"quadras": 3, "agendamentos": 7, "solicitacoes": 2, "usuarios": 11, "solicitacoes_pendentes": 1,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("counters mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: anonymous and non-staff callers get 403", func() {
		for _, token := range []string{"", memberToken} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Staff privileges required")
		}
	})

	s.Run("success: the back-office session cookie is accepted for staff", func() {
		s.mockQueries.EXPECT().Counts(gomock.Any()).Return(&queries.CountsView{Quadras: 1}, nil).Times(1)
		session := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: staffToken}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, session, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"quadras":1`)
	})

	s.Run("error: a member or stale session cookie still gets 403", func() {
		for _, token := range []string{memberToken, "expired"} {
			session := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, session, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Staff privileges required")
		}
	})

	s.Run("error: an invalid token is rejected with 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "garbage")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: a failing counter yields 500 with a plain detail", func() {
		s.mockQueries.EXPECT().Counts(gomock.Any()).Return(nil, errs.New("relation does not exist")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, staffToken)

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.JSONEq(`{"detail":"failed to load counters"}`, rec.Body.String())
	})
}

func (s *AdminHandlerTestSuite) TestOwnerRequestAction() {
	url := "/api/admin/owner-requests/actions/"
	staffActor := &shared.Actor{UserID: staffPrincipal.UserID, IsStaff: true}

	s.Run("success: returns processed and skipped ids", func() {
		s.mockCommands.EXPECT().
			ApplyOwnerRequestAction(gomock.Any(), staffActor, commands.ActionApprove, []int64{4, 5}).
			Return(&commands.ActionResult{
				Processed: 1,
				Skipped:   []commands.SkippedItem{{ID: 5, Status: "rejected", Reason: "transition not allowed"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": commands.ActionApprove, "ids": []int64{4, 5}}, staffToken)

		var result commands.ActionResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.Equal(1, result.Processed)
		s.Require().Len(result.Skipped, 1)
		s.Equal(int64(5), result.Skipped[0].ID)
	})

	s.Run("error: unknown action is a 400 on the action field", func() {
		s.mockCommands.EXPECT().
			ApplyOwnerRequestAction(gomock.Any(), staffActor, "archive", []int64{1}).
			Return(nil, commands.ErrUnknownAction).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "archive", "ids": []int64{1}}, staffToken)

		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.AssertFieldErrors(s.T(), rec, "action")
	})

	s.Run("error: a failure after some ids still reports what was committed", func() {
		s.mockCommands.EXPECT().
			ApplyOwnerRequestAction(gomock.Any(), staffActor, commands.ActionMarkPaid, []int64{1, 2, 3}).
			Return(&commands.ActionResult{Processed: 1, Skipped: []commands.SkippedItem{}}, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": commands.ActionMarkPaid, "ids": []int64{1, 2, 3}}, staffToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Action partially applied")
		var body struct {
			Detail commands.ActionResult `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(1, body.Detail.Processed)
		s.NotNil(body.Detail.Skipped)
	})

	s.Run("error: empty ids fail validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": commands.ActionMarkPaid, "ids": []int64{}}, staffToken)

		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.AssertFieldErrors(s.T(), rec, "ids")
	})

	s.Run("error: non-staff callers get 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": commands.ActionMarkPaid, "ids": []int64{1}}, memberToken)

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestAgendamentoAction() {
	url := "/api/admin/agendamentos/actions/"

	s.Run("success: confirm reports the processed count", func() {
		s.mockCommands.EXPECT().
			ApplyAgendamentoAction(gomock.Any(), gomock.Any(), commands.ActionConfirm, []int64{9, 10}).
			Return(&commands.ActionResult{Processed: 2, Skipped: []commands.SkippedItem{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": commands.ActionConfirm, "ids": []int64{9, 10}}, staffToken)

		var body map[string]any
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.EqualValues(2, body["processed"])
	})
}

func (s *AdminHandlerTestSuite) TestUpdateAdminNotes() {
	s.Run("success: returns the refreshed request", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().UpdateAdminNotes(gomock.Any(), gomock.Any(), int64(3), "ligar amanhã").Return(nil),
			s.mockRequests.EXPECT().Get(gomock.Any(), gomock.Any(), int64(3)).
				Return(&queries.OwnerRequestView{ID: 3, Status: "pending", AdminNotes: "ligar amanhã"}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/owner-requests/3/",
			map[string]string{"admin_notes": "ligar amanhã"}, staffToken)

		var body map[string]any
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("ligar amanhã", body["admin_notes"])
	})

	s.Run("error: unknown id is a 404", func() {
		s.mockCommands.EXPECT().UpdateAdminNotes(gomock.Any(), gomock.Any(), int64(99), "x").
			Return(errs.ErrOwnerRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/owner-requests/99/",
			map[string]string{"admin_notes": "x"}, staffToken)

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: non-numeric id is a 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/owner-requests/abc/",
			map[string]string{"admin_notes": "x"}, staffToken)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
