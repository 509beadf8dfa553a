package middleware

import (
	"net/http"

	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxFlashKey = "flash"

// FlashMiddleware reads the flash cookie into the context and clears it, so a
// notice is shown exactly once. Invalid cookies are cleared too.
func FlashMiddleware(codec *flash.Codec, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := cookie.GetFlashCookie(c, cfg); v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(ctxFlashKey, f)
			}
			cookie.ClearFlashCookie(c, cfg)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *flash.Flash {
	if v, ok := c.Get(ctxFlashKey); ok {
		if f, ok := v.(*flash.Flash); ok {
			return f
		}
	}
	return nil
}

func SetFlash(c *gin.Context, codec *flash.Codec, cfg config.SessionConfig, f flash.Flash) {
	v, err := codec.Encode(f)
	if err != nil {
		return
	}
	cookie.SetFlashCookie(c, cfg, v, codec.MaxAge())
}

// RedirectWithFlash answers 303 so the browser follows with a GET.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, cfg config.SessionConfig, location string, kind flash.Kind, msg string) {
	SetFlash(c, codec, cfg, flash.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusSeeOther, location)
}
