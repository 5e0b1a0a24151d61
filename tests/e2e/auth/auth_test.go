//go:build e2e

package auth_test

import (
	"net/http"
	"regexp"
	"testing"

	"ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/handler/dto/response"
	"ifuut-api/tests/common/authtest"
	"ifuut-api/tests/common/dbtest"
	"ifuut-api/tests/common/httptest"
	"ifuut-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tokenURL    = "/api/token/"
	refreshURL  = "/api/token/refresh/"
	apiTokenURL = "/api/api-token-auth/"
	usersURL    = "/api/users/"
	meURL       = "/api/users/me/"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin", "admin", true)
	dbtest.CreateTestUser(s.T(), s.DB, "joao.silva", "comum", false)
	inactive := dbtest.CreateTestUser(s.T(), s.DB, "inativo", "comum", false)
	dbtest.DeactivateUser(s.T(), s.DB, inactive)
}

func (s *authSuite) TestObtainToken() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{"valid credentials", "joao.silva", dbtest.DefaultPassword, http.StatusOK},
		{"unknown user", "ninguem", dbtest.DefaultPassword, http.StatusUnauthorized},
		{"wrong password", "joao.silva", "wrong-password", http.StatusUnauthorized},
		{"inactive user", "inativo", dbtest.DefaultPassword, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, tokenURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")

			s.Require().Equal(tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var body response.TokenPairResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			s.NotEmpty(body.Access)
			s.NotEmpty(body.Refresh)
		})
	}
}

func (s *authSuite) TestRefreshToken() {
	s.Run("refresh token yields a working access token", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "maria", "associado", false)
		refresh := s.jwt.GenerateRefreshToken(s.T(), id)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, map[string]string{"refresh": refresh}, "")

		var body response.AccessTokenResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		me := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, body.Access)
		s.Equal(http.StatusOK, me.Code)
	})

	s.Run("access token is not accepted as refresh", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "maria", "associado", false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			map[string]string{"refresh": s.jwt.GenerateToken(s.T(), id)}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAPIToken() {
	s.Run("token is stable and authenticates requests", func() {
		creds := request.LoginRequest{Username: "joao.silva", Password: dbtest.DefaultPassword}

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, apiTokenURL, creds, "")
		var a response.APITokenResponse
		httptest.AssertSuccessResponse(s.T(), first, http.StatusOK, &a)
		s.Regexp(regexp.MustCompile(`^[0-9a-f]{40}$`), a.Token)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, apiTokenURL, creds, "")
		var b response.APITokenResponse
		httptest.AssertSuccessResponse(s.T(), second, http.StatusOK, &b)
		s.Equal(a.Token, b.Token)

		me := httptest.PerformRequestWithAuthorization(s.T(), s.Router, http.MethodGet, meURL, nil, "Token "+a.Token)
		var user response.UserResponse
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &user)
		s.Equal("joao.silva", user.Username)
	})

	s.Run("bad credentials", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, apiTokenURL,
			request.LoginRequest{Username: "joao.silva", Password: "nope"}, "")
		httptest.AssertFieldErrors(s.T(), w, "non_field_errors")
	})

	s.Run("unknown key", func() {
		w := httptest.PerformRequestWithAuthorization(s.T(), s.Router, http.MethodGet, meURL, nil,
			"Token 0000000000000000000000000000000000000000")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestInvalidBearer() {
	s.Run("expired", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "maria", "comum", false)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, s.jwt.CreateExpiredToken(s.T(), id))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("on a public route", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quadras/", nil, "garbage")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("missing", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *authSuite) TestRegister() {
	s.Run("new account can log in", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, usersURL, request.RegisterRequest{
			Username: "ana.costa",
			Email:    "ana@ifuut.com.br",
			Tipo:     "associado",
			Password: "s3nha-forte",
		}, "")

		var created response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("associado", created.Tipo)
		s.NotContains(w.Body.String(), "password")

		token := authtest.LoginUser(s.T(), s.Router, "ana.costa", "s3nha-forte")
		me := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusOK, me.Code)
	})

	s.Run("username taken", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, usersURL,
			request.RegisterRequest{Username: "joao.silva", Password: "x"}, "")
		httptest.AssertFieldErrors(s.T(), w, "username")
	})

	s.Run("admin cannot be self-assigned", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, usersURL,
			request.RegisterRequest{Username: "hacker", Tipo: "admin", Password: "x"}, "")
		httptest.AssertFieldErrors(s.T(), w, "tipo")

		var count int
		require.NoError(s.T(), s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM users WHERE username = 'hacker'").Scan(&count))
		s.Zero(count)
	})
}
