package bootstrap

import (
	"log/slog"
	"net/http"

	"coupon-admin/internal/infra/backend"
	"coupon-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewHTTPClient,
		backend.NewMetrics,
		NewBackendClient,
	),
)

func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Backend.Timeout}
}

func NewBackendClient(cfg config.Config, httpClient *http.Client, metrics *backend.Metrics, logger *slog.Logger) (*backend.Client, error) {
	return backend.NewClient(cfg.Backend, httpClient, metrics, logger)
}
