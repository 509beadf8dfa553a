//go:build unit

package web_test

import (
	"net/http"
	"testing"

	"coupon-admin/internal/domain/store"
	"coupon-admin/tests/common/builder"
	"coupon-admin/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotFoundPageTestSuite struct {
	webSuite
}

func TestNotFoundPageSuite(t *testing.T) {
	suite.Run(t, new(NotFoundPageTestSuite))
}

func (s *NotFoundPageTestSuite) TestUnknownPath() {
	s.Run("offers the filters panel", func() {
		st := builder.NewStoreBuilder().BuildDomain()
		s.storeQ.EXPECT().List(gomock.Any()).Return([]store.Store{st}, nil)

		w := httptest.PerformGet(s.T(), s.router, "/nowhere?store="+st.ID, s.session())

		s.Equal(http.StatusNotFound, w.Code)
		httptest.AssertHTML(s.T(), w)
		body := w.Body.String()
		s.Contains(body, "Page Not Found")
		s.Contains(body, `<option value="`+st.ID+`" selected>Acme</option>`)
		s.Contains(body, "Clear filters")
	})

	s.Run("logged out visitors are asked to log in for stores", func() {
		w := httptest.PerformGet(s.T(), s.router, "/nowhere")

		s.Equal(http.StatusNotFound, w.Code)
		s.Contains(w.Body.String(), "Please log in to view stores")
	})
}

func (s *NotFoundPageTestSuite) TestHealthAndMetrics() {
	w := httptest.PerformGet(s.T(), s.router, "/health")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"ok"`)

	m := httptest.PerformGet(s.T(), s.router, "/metrics")
	s.Equal(http.StatusOK, m.Code)
	s.Contains(m.Body.String(), "coupon_admin_http_requests_total")
}
