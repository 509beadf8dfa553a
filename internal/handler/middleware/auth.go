package middleware

import (
	"log/slog"

	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/cookie"
	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/internal/pkg/tokenbox"

	"github.com/gin-gonic/gin"
)

const ctxTokenKey = "bearer_token"

// AuthMiddleware loads the backend bearer token from the session cookie once
// per request. It never rejects a request: pages decide what a missing token
// means for them.
type AuthMiddleware struct {
	box       *tokenbox.Box
	inspector *jwt.Inspector
	clock     clock.Clock
	cfg       config.SessionConfig
}

func NewAuthMiddleware(box *tokenbox.Box, inspector *jwt.Inspector, clk clock.Clock, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		box:       box,
		inspector: inspector,
		clock:     clk,
		cfg:       cfg.Session,
	}
}

func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sealed := cookie.GetTokenCookie(c, m.cfg)
		if sealed == "" {
			c.Next()
			return
		}

		token, err := m.box.Open(sealed)
		if err != nil {
			slog.Warn("Discarding unreadable session cookie", "path", c.Request.URL.Path)
			cookie.ClearTokenCookie(c, m.cfg)
			c.Next()
			return
		}

		if err := m.inspector.CheckExpiry(token, m.clock.Now()); err != nil {
			slog.Info("Session token expired", "path", c.Request.URL.Path)
			cookie.ClearTokenCookie(c, m.cfg)
			c.Next()
			return
		}

		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// GetToken returns the bearer token loaded for this request.
func GetToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}
