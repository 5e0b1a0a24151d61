//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ifuut-api/internal/handler/api"
	reqdto "ifuut-api/internal/handler/dto/request"
	resdto "ifuut-api/internal/handler/dto/response"
	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/tests/common/httptest"
	"ifuut-api/tests/common/testutil"
	commandsmock "ifuut-api/tests/mock/commands"
	queriesmock "ifuut-api/tests/mock/queries"
	usecasemock "ifuut-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	validator := usecasemock.NewMockTokenValidator(s.mockCtrl)
	expectTokens(validator)

	h := api.NewUserHandler(s.mockCommands, s.mockQueries)
	auth := middleware.NewAuthMiddleware(validator)

	g := s.router.Group("/api", auth.Authenticate())
	g.POST("/users/", h.Register)
	g.GET("/users/me/", auth.RequireAuth(), h.Me)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestRegister() {
	url := "/api/users/"
	reqBody := reqdto.RegisterRequest{
		Username:  "maria.souza",
		Email:     "maria@example.com",
		FirstName: "Maria",
		Tipo:      "associado",
		Password:  "segredo123",
	}

	s.Run("success: 201 with the public profile", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(int64(21), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), int64(21)).Return(&queries.UserView{
			ID: 21, Username: "maria.souza", Email: "maria@example.com", FirstName: "Maria", Tipo: "associado", IsActive: true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("associado", got.Tipo)
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
			field  string
		}{
			{name: "missing username", mutate: testutil.Field("username", nil), field: "username"},
			{name: "missing password", mutate: testutil.Field("password", nil), field: "password"},
			{name: "invalid email", mutate: testutil.Field("email", "maria"), field: "email"},
			{name: "unknown tipo", mutate: testutil.Field("tipo", "vip"), field: "tipo"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
				httptest.AssertFieldErrors(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: a taken username is a field error", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(int64(0), errs.Field("username", "A user with that username already exists.")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.AssertFieldErrors(s.T(), rec, "username")
	})
}

func (s *UserHandlerTestSuite) TestMe() {
	s.Run("success: returns the caller", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), memberPrincipal.UserID).
			Return(&queries.UserView{ID: memberPrincipal.UserID, Username: "joao.silva", Tipo: "comum"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/me/", nil, memberToken)

		var got resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("joao.silva", got.Username)
	})

	s.Run("error: anonymous callers get 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/me/", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}
