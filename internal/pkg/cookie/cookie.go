package cookie

import (
	"net/http"
	"time"

	"coupon-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetTokenCookie(c *gin.Context, cfg config.SessionConfig, sealedToken string, expiry time.Duration) {
	set(c, cfg.Cookie, cfg.TokenCookieName, sealedToken, int(expiry.Seconds()))
}

func ClearTokenCookie(c *gin.Context, cfg config.SessionConfig) {
	set(c, cfg.Cookie, cfg.TokenCookieName, "", -1)
}

func GetTokenCookie(c *gin.Context, cfg config.SessionConfig) string {
	token, _ := c.Cookie(cfg.TokenCookieName)
	return token
}

func SetFlashCookie(c *gin.Context, cfg config.SessionConfig, value string, maxAge time.Duration) {
	set(c, cfg.Cookie, cfg.FlashCookieName, value, int(maxAge.Seconds()))
}

func ClearFlashCookie(c *gin.Context, cfg config.SessionConfig) {
	set(c, cfg.Cookie, cfg.FlashCookieName, "", -1)
}

func GetFlashCookie(c *gin.Context, cfg config.SessionConfig) string {
	v, _ := c.Cookie(cfg.FlashCookieName)
	return v
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
