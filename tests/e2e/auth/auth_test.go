//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"closet-by-era/internal/domain/user"
	"closet-by-era/internal/handler/dto/request"
	"closet-by-era/internal/handler/dto/response"
	"closet-by-era/internal/usecase/queries"
	"closet-by-era/tests/common/dbtest"
	"closet-by-era/tests/common/httptest"
	"closet-by-era/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "shopper@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials log in",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user is rejected",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account cannot log in",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email fails validation",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password fails validation",
			email:          "admin@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				// last_login_at is touched on success
				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin)
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie yields a new access token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshRes response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshRes))
		require.NotEmpty(t, refreshRes.AccessToken)
	})

	s.Run("refresh token in the body works without cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	})

	s.Run("access token is not accepted as a refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: accessCookie.Value}, "")
		require.Equal(t, http.StatusUnauthorized, rw.Code)
	})

	s.Run("missing refresh token is rejected", func() {
		t := s.T()

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, rw.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("authenticated user sees their own profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, accessCookie.Value)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, "admin@example.com", me.Email)
		require.Equal(t, string(user.RoleAdmin), me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("unauthenticated request is rejected", func() {
		t := s.T()

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, mw.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, accessCookie)
		require.NotNil(t, refreshCookie)

		lw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil,
			[]*http.Cookie{accessCookie, refreshCookie}, "")
		require.Equal(t, http.StatusNoContent, lw.Code, lw.Body.String())

		cleared := httptest.ExtractCookie(lw, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}
