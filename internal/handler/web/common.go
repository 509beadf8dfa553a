package web

import (
	"errors"
	"net/http"

	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginRequired    = "Login required"
	msgDeleteInProgress = "Delete already in progress"
	msgDeleted          = "Deleted successfully"
	msgDeleteFailed     = "Delete failed"
)

// Notifier sends the admin somewhere else with a one-shot notice.
type Notifier struct {
	codec *flash.Codec
	cfg   config.SessionConfig
}

func NewNotifier(codec *flash.Codec, cfg config.Config) *Notifier {
	return &Notifier{codec: codec, cfg: cfg.Session}
}

func (n *Notifier) Success(c *gin.Context, location, msg string) {
	middleware.RedirectWithFlash(c, n.codec, n.cfg, location, flash.KindSuccess, msg)
}

func (n *Notifier) Error(c *gin.Context, location, msg string) {
	middleware.RedirectWithFlash(c, n.codec, n.cfg, location, flash.KindError, msg)
}

// Silent redirects without a notice. Used when the admin walked away
// mid-request and there is nobody to tell.
func (n *Notifier) Silent(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func layout(c *gin.Context, title, nav string) response.Layout {
	_, loggedIn := middleware.GetToken(c)
	return response.Layout{
		Title:     title,
		Nav:       nav,
		LoggedIn:  loggedIn,
		RequestID: middleware.GetRequestID(c),
		Flash:     middleware.GetFlash(c),
	}
}

// messageFor picks the notice for a failed command: the precondition and
// validation messages are specific, everything else gets fallback.
func messageFor(err error, fallback string) string {
	switch {
	case errs.Is(err, errs.ErrLoginRequired):
		return msgLoginRequired
	case errs.Is(err, errs.ErrDeleteInProgress):
		return msgDeleteInProgress
	}
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}

func aborted(err error) bool {
	return infra.IsKind(err, infra.KindAborted)
}
