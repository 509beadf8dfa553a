package bootstrap

import (
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/internal/pkg/tokenbox"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		clock.NewRealClock,
		jwt.NewInspector,
		NewTokenBox,
		NewFlashCodec,
	),
)

func NewTokenBox(cfg config.Config) *tokenbox.Box {
	return tokenbox.New(cfg.Session.Secret)
}

func NewFlashCodec(cfg config.Config) *flash.Codec {
	return flash.NewCodec(cfg.Session.Secret)
}
