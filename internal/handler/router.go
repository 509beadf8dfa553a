package handler

import (
	"net/http"

	"coupon-admin/internal/handler/api"
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/web"
	"coupon-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Params is everything the router mounts.
type Params struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer
	Auth     *middleware.AuthMiddleware
	Flash    *flash.Codec

	Coupons    *web.CouponHandler
	Stores     *web.StoreHandler
	Categories *web.CategoryHandler
	Filters    *web.FilterHandler
	Login      *web.AuthHandler
	NotFound   *web.NotFoundHandler

	CouponAPI   *api.CouponHandler
	CategoryAPI *api.CategoryHandler
}

func NewRouter(p Params) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p Params) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(p.Metrics.Middleware())
	p.Engine.Use(middleware.ErrorHandler())
	p.Engine.Use(middleware.FlashMiddleware(p.Flash, p.Config.Session))
	p.Engine.Use(p.Auth.OptionalAuth())
}

func setupRoutes(p Params) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: p.Coupons.Index},
		{Method: http.MethodGet, Path: "/filters", Handler: p.Filters.Navigate},
		{Method: http.MethodPost, Path: "/coupons", Handler: p.Coupons.Create},
		{Method: http.MethodPost, Path: "/coupons/:id/delete", Handler: p.Coupons.Delete},

		{Method: http.MethodGet, Path: "/stores", Handler: p.Stores.Index},
		{Method: http.MethodPost, Path: "/stores", Handler: p.Stores.Create},
		{Method: http.MethodPost, Path: "/stores/:id/delete", Handler: p.Stores.Delete},

		{Method: http.MethodGet, Path: "/categories", Handler: p.Categories.Index},
		{Method: http.MethodPost, Path: "/categories", Handler: p.Categories.Create},

		{Method: http.MethodGet, Path: "/login", Handler: p.Login.LoginPage},
		{Method: http.MethodPost, Path: "/login", Handler: p.Login.Login},
		{Method: http.MethodPost, Path: "/logout", Handler: p.Login.Logout},
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/coupons/:id/track", Handler: p.CouponAPI.Track},
			{Method: http.MethodGet, Path: "/categories/:id", Handler: p.CategoryAPI.Get},
		})
	}

	engine.NoRoute(p.NotFound.Handle)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
