package bootstrap

import (
	"coupon-admin/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule provides the admin Config, read once from the environment and an
// optional .env file.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
