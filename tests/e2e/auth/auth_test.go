//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/dto/request"
	"gym-booking/internal/pkg/cookie"
	"gym-booking/tests/common/authtest"
	"gym-booking/tests/common/dbtest"
	"gym-booking/tests/common/httptest"
	"gym-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login sets the access token cookie", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "login@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, accessCookie)
		require.NotEmpty(t, accessCookie.Value)
		require.True(t, accessCookie.HttpOnly)

		var body struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, "login@example.com", body.User.Email)
		require.Equal(t, "user", body.User.Role)
	})

	s.Run("Error case: wrong password", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "wrongpass@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "wrongpass@example.com", Password: "not-the-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: unknown email", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMeAndLogout() {
	s.Run("Me returns the authenticated user", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "whoami@example.com", string(user.RoleTrainer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "whoami@example.com", me.Email)
		require.Equal(t, "trainer", me.Role)
	})

	s.Run("Me without a token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Logout clears the access token cookie", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "leaver@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}
