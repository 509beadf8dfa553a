//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"coupon-admin/cmd/bootstrap"
	"coupon-admin/cmd/bootstrap/components"
	"coupon-admin/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const wiremockPort = "8080/tcp"

var (
	wiremockContainerOnce sync.Once
	wiremockTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) BaseURL() string {
	return fmt.Sprintf("http://%s:%s", c.Host, c.Port.Port())
}

// ------------------------------------------------------------
// Per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*WireMock, *gin.Engine, config.Config) {
	info := startContainers(t)
	mock := &WireMock{baseURL: info.BaseURL(), client: &http.Client{Timeout: 5 * time.Second}}

	router, cfg, app := buildE2EApp(info.BaseURL() + "/api")
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready", "wiremock", info.BaseURL())
	return mock, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startWireMockContainerOnce(t)

	info, err := getContainerHostPort(wiremockTestContainer, wiremockPort)
	require.NoError(t, err, "failed to read WireMock container address")
	return info
}

// ------------------------------------------------------------
// App wired against the stub backend
// ------------------------------------------------------------
func buildE2EApp(backendURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			c := config.NewTestConfig()
			c.Backend.BaseURL = backendURL
			return c
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.BackendModule,
		bootstrap.SessionModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, cfg, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startWireMockContainerOnce(t *testing.T) {
	wiremockContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "wiremock/wiremock:3.9.1",
			ExposedPorts: []string{wiremockPort},
			Cmd:          []string{"--disable-banner"},
			WaitingFor: wait.ForHTTP("/__admin/health").
				WithPort(wiremockPort).
				WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		wiremockTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start WireMock container")
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// WireMock admin API
// ------------------------------------------------------------

// WireMock drives the stub backend through its admin API.
type WireMock struct {
	baseURL string
	client  *http.Client
}

// Stub answers method+path (path includes the query, when any) with status and body.
func (w *WireMock) Stub(t *testing.T, method, path string, status int, body any) {
	t.Helper()
	mapping := map[string]any{
		"request": map[string]any{"method": method, "url": path},
		"response": map[string]any{
			"status":   status,
			"jsonBody": body,
			"headers":  map[string]string{"Content-Type": "application/json"},
		},
	}
	w.post(t, "/__admin/mappings", mapping, http.StatusCreated, nil)
}

// StubPath is Stub matching on the path only, for any query string.
func (w *WireMock) StubPath(t *testing.T, method, path string, status int, body any) {
	t.Helper()
	mapping := map[string]any{
		"request": map[string]any{"method": method, "urlPath": path},
		"response": map[string]any{
			"status":   status,
			"jsonBody": body,
			"headers":  map[string]string{"Content-Type": "application/json"},
		},
	}
	w.post(t, "/__admin/mappings", mapping, http.StatusCreated, nil)
}

// Count is how many requests the backend received for method+urlPath.
func (w *WireMock) Count(t *testing.T, method, urlPath string) int {
	t.Helper()
	var out struct {
		Count int `json:"count"`
	}
	w.post(t, "/__admin/requests/count", map[string]string{"method": method, "urlPath": urlPath}, http.StatusOK, &out)
	return out.Count
}

// Requests returns the recorded requests for method+urlPath.
func (w *WireMock) Requests(t *testing.T, method, urlPath string) []RecordedRequest {
	t.Helper()
	var out struct {
		Requests []RecordedRequest `json:"requests"`
	}
	w.post(t, "/__admin/requests/find", map[string]string{"method": method, "urlPath": urlPath}, http.StatusOK, &out)
	return out.Requests
}

type RecordedRequest struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

func (w *WireMock) Reset(t *testing.T) {
	t.Helper()
	w.post(t, "/__admin/reset", nil, http.StatusOK, nil)
}

func (w *WireMock) post(t *testing.T, path string, body any, want int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := w.client.Post(w.baseURL+path, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, want, resp.StatusCode, "WireMock admin %s", path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *WireMock
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	backend, router, cfg := setupE2EEnvironment(t)
	s.Backend = backend
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	s.Backend.Reset(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Backend.Reset(s.T())
}
