//go:build e2e

package coupon_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"coupon-admin/tests/common/authtest"
	"coupon-admin/tests/common/builder"
	"coupon-admin/tests/common/httptest"
	"coupon-admin/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type CouponE2ETestSuite struct {
	e2e.SharedSuite
}

func TestCouponE2ETestSuite(t *testing.T) {
	suite.Run(t, new(CouponE2ETestSuite))
}

func (s *CouponE2ETestSuite) couponBody() map[string]any {
	return map[string]any{
		"data": []map[string]any{{
			"_id":             "64b7f0c2e1a2b3c4d5e6f7a1",
			"offerDetails":    "10% off",
			"active":          true,
			"isValid":         true,
			"featuredForHome": false,
			"store":           map[string]any{"_id": "64b7f0c2e1a2b3c4d5e6f701", "name": "Acme"},
		}},
	}
}

func (s *CouponE2ETestSuite) TestList() {
	s.Run("logged in admin sees coupons from the backend", func() {
		s.Backend.StubPath(s.T(), http.MethodGet, "/api/coupons", http.StatusOK, s.couponBody())
		s.Backend.StubPath(s.T(), http.MethodGet, "/api/stores", http.StatusOK, map[string]any{"stores": []any{}})

		w := httptest.PerformGet(s.T(), s.Router, "/?isValid=true", authtest.LoggedIn(s.T(), s.Config, time.Now()))

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "10% off")
		s.Contains(w.Body.String(), "Acme")

		reqs := s.Backend.Requests(s.T(), http.MethodGet, "/api/coupons")
		s.Require().Len(reqs, 1)
		s.Contains(reqs[0].URL, "isValid=true")
	})

	s.Run("logged out admin is asked to log in and nothing is fetched", func() {
		w := httptest.PerformGet(s.T(), s.Router, "/")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Please login to view or manage coupons")
		s.Contains(w.Body.String(), "Please log in to view stores")
		s.Zero(s.Backend.Count(s.T(), http.MethodGet, "/api/coupons"))
		s.Zero(s.Backend.Count(s.T(), http.MethodGet, "/api/stores"))
	})

	s.Run("backend failure shows a notice", func() {
		s.Backend.StubPath(s.T(), http.MethodGet, "/api/coupons", http.StatusInternalServerError, map[string]any{"message": "boom"})
		s.Backend.StubPath(s.T(), http.MethodGet, "/api/stores", http.StatusOK, map[string]any{"stores": []any{}})

		w := httptest.PerformGet(s.T(), s.Router, "/", authtest.LoggedIn(s.T(), s.Config, time.Now()))

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Failed to load coupons")
	})
}

func (s *CouponE2ETestSuite) TestDelete() {
	const couponID = "64b7f0c2e1a2b3c4d5e6f7a1"

	s.Run("without a session no request reaches the backend", func() {
		w := httptest.PerformForm(s.T(), s.Router, "/coupons/"+couponID+"/delete", url.Values{"from": {"store=s1"}})

		httptest.AssertRedirect(s.T(), w, "/?store=s1")
		s.Zero(s.Backend.Count(s.T(), http.MethodDelete, "/api/coupons/"+couponID))

		flashCookie := httptest.ExtractCookie(w, s.Config.Session.FlashCookieName)
		s.Require().NotNil(flashCookie)
		page := httptest.PerformGet(s.T(), s.Router, "/?store=s1", flashCookie)
		s.Contains(page.Body.String(), "Login required")
	})

	s.Run("with a session the backend is called with the bearer token", func() {
		s.Backend.Stub(s.T(), http.MethodDelete, "/api/coupons/"+couponID, http.StatusOK, map[string]any{"message": "deleted"})

		w := httptest.PerformForm(s.T(), s.Router, "/coupons/"+couponID+"/delete", url.Values{}, authtest.LoggedIn(s.T(), s.Config, time.Now()))

		httptest.AssertRedirect(s.T(), w, "/")
		reqs := s.Backend.Requests(s.T(), http.MethodDelete, "/api/coupons/"+couponID)
		s.Require().Len(reqs, 1)
		s.Contains(reqs[0].Headers["Authorization"], "Bearer ")
	})
}

func (s *CouponE2ETestSuite) TestCreate() {
	s.Run("creates and redirects with a success notice", func() {
		s.Backend.Stub(s.T(), http.MethodPost, "/api/coupons", http.StatusCreated, map[string]any{
			"data": map[string]any{"_id": "64b7f0c2e1a2b3c4d5e6f7a9", "offerDetails": "10% off", "store": "64b7f0c2e1a2b3c4d5e6f701"},
		})

		w := httptest.PerformForm(s.T(), s.Router, "/coupons", builder.NewCouponBuilder().BuildForm(), authtest.LoggedIn(s.T(), s.Config, time.Now()))

		httptest.AssertRedirect(s.T(), w, "/")
		s.Equal(1, s.Backend.Count(s.T(), http.MethodPost, "/api/coupons"))
	})
}

func (s *CouponE2ETestSuite) TestFilterNavigation() {
	w := httptest.PerformGet(s.T(), s.Router, "/filters?from="+url.QueryEscape("store=s1&page=3")+"&key=active&value=true")

	httptest.AssertRedirect(s.T(), w, "/?active=true&page=1&store=s1")
}

func (s *CouponE2ETestSuite) TestTrack() {
	const couponID = "64b7f0c2e1a2b3c4d5e6f7a1"
	s.Backend.Stub(s.T(), http.MethodPost, "/api/coupons/"+couponID+"/track", http.StatusOK, map[string]any{"success": true})

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/coupons/"+couponID+"/track", nil)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal(1, s.Backend.Count(s.T(), http.MethodPost, "/api/coupons/"+couponID+"/track"))
}
