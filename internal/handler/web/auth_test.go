//go:build unit

package web_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"coupon-admin/internal/domain/auth"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/tokenbox"
	"coupon-admin/tests/common/authtest"
	"coupon-admin/tests/common/builder"
	"coupon-admin/tests/common/httptest"
	"coupon-admin/tests/common/testutil"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthPageTestSuite struct {
	webSuite
}

func TestAuthPageSuite(t *testing.T) {
	suite.Run(t, new(AuthPageTestSuite))
}

func (s *AuthPageTestSuite) TestLoginPage() {
	w := httptest.PerformGet(s.T(), s.router, "/login")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `action="/login"`)
}

func (s *AuthPageTestSuite) TestLogin() {
	creds := builder.NewAuthBuilder()

	s.Run("stores a sealed token until it expires", func() {
		exp := s.clock.Now().Add(30 * time.Minute)
		token := authtest.BackendToken(s.T(), exp)
		s.authCmds.EXPECT().Login(gomock.Any(), creds.Email, creds.Password).
			Return(&auth.Session{Token: token, ExpiresAt: exp}, nil)

		w := httptest.PerformForm(s.T(), s.router, "/login", creds.BuildForm())

		httptest.AssertRedirect(s.T(), w, "/stores")
		cookie := httptest.ExtractCookie(w, s.cfg.Session.TokenCookieName)
		s.Require().NotNil(cookie)
		s.True(cookie.HttpOnly)
		s.Equal(int((30 * time.Minute).Seconds()), cookie.MaxAge)

		opened, err := tokenbox.New(s.cfg.Session.Secret).Open(cookie.Value)
		s.Require().NoError(err)
		s.Equal(token, opened)
	})

	s.Run("an opaque token lives for the session ttl", func() {
		s.authCmds.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&auth.Session{Token: "opaque"}, nil)

		w := httptest.PerformForm(s.T(), s.router, "/login", creds.BuildForm())

		cookie := httptest.ExtractCookie(w, s.cfg.Session.TokenCookieName)
		s.Require().NotNil(cookie)
		s.Equal(int(s.cfg.Session.TTL.Seconds()), cookie.MaxAge)
	})

	s.Run("shows the server message", func() {
		s.authCmds.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.GatewayError{Kind: infra.KindUnauthorized, Status: 401, Message: "Invalid credentials"})

		w := httptest.PerformForm(s.T(), s.router, "/login", creds.BuildForm())

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid credentials")
		s.Contains(w.Body.String(), creds.Email)
		s.Nil(httptest.ExtractCookie(w, s.cfg.Session.TokenCookieName))
	})

	s.Run("falls back to a generic message", func() {
		s.authCmds.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.GatewayError{Kind: infra.KindTransport})

		w := httptest.PerformForm(s.T(), s.router, "/login", creds.BuildForm())

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Login failed")
	})

	s.Run("form errors never reach the backend", func() {
		tests := []struct {
			name    string
			form    url.Values
			message string
		}{
			{name: "missing email", form: testutil.Form(creds.BuildForm(), testutil.Field("email", "")), message: "This field is required."},
			{name: "bad email", form: testutil.Form(creds.BuildForm(), testutil.Field("email", "not-an-email")), message: "Enter a valid email address."},
			{name: "missing password", form: testutil.Form(creds.BuildForm(), testutil.Field("password", "")), message: "This field is required."},
		}

		for _, tc := range tests {
			s.Run(tc.name, func() {
				w := httptest.PerformForm(s.T(), s.router, "/login", tc.form)

				s.Equal(http.StatusBadRequest, w.Code)
				s.Contains(w.Body.String(), tc.message)
			})
		}
	})
}

func (s *AuthPageTestSuite) TestLogout() {
	w := httptest.PerformForm(s.T(), s.router, "/logout", nil, s.session())

	httptest.AssertRedirect(s.T(), w, "/login")
	cookie := httptest.ExtractCookie(w, s.cfg.Session.TokenCookieName)
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Contains(s.follow(w).Body.String(), "Logged out")
}

func (s *AuthPageTestSuite) TestExpiredSessionIsIgnored() {
	expired := authtest.SessionCookie(s.T(), s.cfg, authtest.BackendToken(s.T(), s.clock.Now().Add(-time.Minute)))

	w := httptest.PerformGet(s.T(), s.router, "/", expired)

	s.Contains(w.Body.String(), "Please login to view or manage coupons")
	cleared := httptest.ExtractCookie(w, s.cfg.Session.TokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
}
