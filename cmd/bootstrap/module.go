package bootstrap

import (
	"coupon-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	BackendModule,
	SessionModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
