package components

import (
	"coupon-admin/internal/infra/backend"
	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule exposes the backend client through the narrow ports each use
// case depends on.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			func(c *backend.Client) *backend.Client { return c },
			fx.As(new(queries.StoreReadStore)),
			fx.As(new(queries.CouponReadStore)),
			fx.As(new(queries.CategoryReadStore)),
			fx.As(new(commands.StoreWriteStore)),
			fx.As(new(commands.CouponWriteStore)),
			fx.As(new(commands.CategoryWriteStore)),
			fx.As(new(commands.AuthGateway)),
		),
		fx.Annotate(
			func(i *jwt.Inspector) *jwt.Inspector { return i },
			fx.As(new(commands.TokenInspector)),
		),
	),
)
