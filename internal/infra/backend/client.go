package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/patch"
	"coupon-admin/internal/pkg/requestid"
)

const maxResponseBytes = 4 << 20

// Client talks to the remote coupon backend. It keeps no state between calls:
// no retries, no caching, and a repeated mutation is a repeated side effect.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, httpClient *http.Client, metrics *Metrics, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.New("invalid BACKEND_BASE_URL: " + cfg.BaseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// IsAborted reports whether err is a call the caller cancelled. Such errors are
// expected and must not be shown to anyone.
func IsAborted(err error) bool {
	return infra.IsKind(err, infra.KindAborted)
}

type call struct {
	op       string
	method   string
	path     string
	query    url.Values
	body     any
	token    string
	fallback string
}

// do performs the call and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, rc call) ([]byte, error) {
	target := c.baseURL + rc.path
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}

	var reader io.Reader
	if rc.body != nil {
		b, err := json.Marshal(rc.body)
		if err != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindDecode, rc.op, 0, rc.fallback, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, target, reader)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, rc.op, 0, rc.fallback, err)
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil || rc.method == http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.token != "" {
		req.Header.Set("Authorization", "Bearer "+rc.token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			c.metrics.observe(rc.op, 0, "aborted", time.Since(start))
			return nil, infra.WrapGatewayErr(c.logger, infra.KindAborted, rc.op, 0, rc.fallback, err)
		}
		c.metrics.observe(rc.op, 0, "error", time.Since(start))
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, rc.op, 0, rc.fallback, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.metrics.observe(rc.op, resp.StatusCode, "", time.Since(start))
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindAborted, rc.op, resp.StatusCode, rc.fallback, err)
		}
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, rc.op, resp.StatusCode, rc.fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := patch.FirstNonEmpty(serverMessage(body), rc.fallback)
		return nil, infra.WrapGatewayErr(c.logger, kindForStatus(resp.StatusCode), rc.op, resp.StatusCode, msg, nil)
	}

	c.logger.Debug("Backend call completed",
		slog.String("operation", rc.op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return body, nil
}

func (c *Client) decode(rc call, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecode, rc.op, 0, rc.fallback, err)
	}
	return nil
}

// decodeEntity reads a single created entity from `data`, then from `key`, then
// from the body itself: the backend is not consistent across resources.
func (c *Client) decodeEntity(rc call, body []byte, key string, out any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return c.decode(rc, body, out)
	}
	for _, k := range []string{"data", key} {
		if raw, ok := fields[k]; ok && len(raw) > 0 && raw[0] == '{' {
			return c.decode(rc, raw, out)
		}
	}
	return c.decode(rc, body, out)
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if s, ok := payload.Error.(string); ok {
		return s
	}
	return ""
}

func kindForStatus(status int) infra.GatewayErrorKind {
	switch status {
	case http.StatusNotFound:
		return infra.KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return infra.KindUnauthorized
	default:
		return infra.KindStatus
	}
}
