package components

import (
	"coupon-admin/internal/handler"
	"coupon-admin/internal/handler/api"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewHTTPMetrics,
		web.NewNotifier,
		web.NewFilterHandler,
		web.NewCouponHandler,
		web.NewStoreHandler,
		web.NewCategoryHandler,
		web.NewAuthHandler,
		web.NewNotFoundHandler,
		api.NewCouponHandler,
		api.NewCategoryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
