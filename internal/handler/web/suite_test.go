//go:build unit

package web_test

import (
	"io"
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"
	"time"

	"coupon-admin/internal/handler"
	"coupon-admin/internal/handler/api"
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/web"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/internal/pkg/tokenbox"
	"coupon-admin/tests/common/authtest"
	"coupon-admin/tests/common/httptest"
	commandsmock "coupon-admin/tests/mock/commands"
	queriesmock "coupon-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// webSuite mounts the full router over mocked use cases.
type webSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    config.Config
	clock  *clock.FixedClock
	ctrl   *gomock.Controller

	couponCmds   *commandsmock.MockCouponCommands
	storeCmds    *commandsmock.MockStoreCommands
	categoryCmds *commandsmock.MockCategoryCommands
	authCmds     *commandsmock.MockAuthCommands

	couponQ   *queriesmock.MockCouponQueries
	storeQ    *queriesmock.MockStoreQueries
	categoryQ *queriesmock.MockCategoryQueries
}

func (s *webSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()
	s.clock = clock.NewFixedClock(testNow)
	s.ctrl = gomock.NewController(s.T())

	s.couponCmds = commandsmock.NewMockCouponCommands(s.ctrl)
	s.storeCmds = commandsmock.NewMockStoreCommands(s.ctrl)
	s.categoryCmds = commandsmock.NewMockCategoryCommands(s.ctrl)
	s.authCmds = commandsmock.NewMockAuthCommands(s.ctrl)
	s.couponQ = queriesmock.NewMockCouponQueries(s.ctrl)
	s.storeQ = queriesmock.NewMockStoreQueries(s.ctrl)
	s.categoryQ = queriesmock.NewMockCategoryQueries(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	box := tokenbox.New(s.cfg.Session.Secret)
	codec := flash.NewCodec(s.cfg.Session.Secret)
	notifier := web.NewNotifier(codec, s.cfg)
	filters := web.NewFilterHandler(s.storeQ, logger)
	reg := prometheus.NewRegistry()

	handler.NewRouter(handler.Params{
		Engine:   s.router,
		Config:   s.cfg,
		Logger:   middleware.NewLogger(s.cfg.Log),
		Metrics:  middleware.NewHTTPMetrics(reg),
		Gatherer: reg,
		Auth:     middleware.NewAuthMiddleware(box, jwt.NewInspector(), s.clock, s.cfg),
		Flash:    codec,

		Coupons:    web.NewCouponHandler(s.couponCmds, s.couponQ, filters, notifier, s.clock, logger),
		Stores:     web.NewStoreHandler(s.storeCmds, s.storeQ, notifier, logger),
		Categories: web.NewCategoryHandler(s.categoryCmds, s.categoryQ, notifier, logger),
		Filters:    filters,
		Login:      web.NewAuthHandler(s.authCmds, box, notifier, s.clock, s.cfg, logger),
		NotFound:   web.NewNotFoundHandler(filters),

		CouponAPI:   api.NewCouponHandler(s.couponCmds),
		CategoryAPI: api.NewCategoryHandler(s.categoryQ),
	})
}

func (s *webSuite) TearDownTest() {
	s.ctrl.Finish()
}

// session is a valid login cookie for the suite's clock.
func (s *webSuite) session() *http.Cookie {
	return authtest.LoggedIn(s.T(), s.cfg, s.clock.Now())
}

// follow loads the redirect target the way a browser would, carrying the
// flash cookie set by w.
func (s *webSuite) follow(w *stdhttptest.ResponseRecorder, cookies ...*http.Cookie) *stdhttptest.ResponseRecorder {
	s.T().Helper()
	location := w.Header().Get("Location")
	s.Require().NotEmpty(location, "response is not a redirect")
	if f := httptest.ExtractCookie(w, s.cfg.Session.FlashCookieName); f != nil {
		cookies = append(cookies, f)
	}
	return httptest.PerformGet(s.T(), s.router, location, cookies...)
}
