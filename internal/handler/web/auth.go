package web

import (
	"log/slog"
	"net/http"
	"time"

	"coupon-admin/internal/domain/auth"
	reqdto "coupon-admin/internal/handler/dto/request"
	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/render"
	"coupon-admin/internal/handler/templates/pages"
	"coupon-admin/internal/handler/validation"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/cookie"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/tokenbox"
	"coupon-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	loginPath      = "/login"
	afterLoginPath = storesPath
	msgLoginFailed = "Login failed"
	msgLoggedIn    = "Logged in successfully"
	msgLoggedOut   = "Logged out"
)

type AuthHandler struct {
	cmds     commands.AuthCommands
	box      *tokenbox.Box
	notifier *Notifier
	clock    clock.Clock
	cfg      config.SessionConfig
	logger   *slog.Logger
}

func NewAuthHandler(cmds commands.AuthCommands, box *tokenbox.Box, notifier *Notifier, clk clock.Clock, cfg config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cmds:     cmds,
		box:      box,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg.Session,
		logger:   logger,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.Login(response.LoginPage{Layout: layout(c, "Log in", "login")}))
}

func (h *AuthHandler) Login(c *gin.Context) {
	page := response.LoginPage{Layout: layout(c, "Log in", "login")}

	var form reqdto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		page.Email = form.Email
		page.Errors = validation.FromBindError(err, &form)
		render.Component(c, http.StatusBadRequest, pages.Login(page))
		return
	}
	page.Email = form.Email

	session, err := h.cmds.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if aborted(err) {
			return
		}
		status := http.StatusUnauthorized
		page.Error = infra.Message(err, msgLoginFailed)
		if errs.Is(err, errs.ErrDomainValidation) {
			status = http.StatusBadRequest
			page.Error = messageFor(err, msgLoginFailed)
		}
		render.Component(c, status, pages.Login(page))
		return
	}

	sealed, err := h.box.Seal(session.Token)
	if err != nil {
		h.logger.Error("Failed to seal session token", slog.String("error", err.Error()))
		page.Error = msgLoginFailed
		render.Component(c, http.StatusInternalServerError, pages.Login(page))
		return
	}

	cookie.SetTokenCookie(c, h.cfg, sealed, h.lifetime(session))
	h.notifier.Success(c, afterLoginPath, msgLoggedIn)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg)
	if _, ok := middleware.GetToken(c); ok {
		h.logger.Info("Admin logged out", slog.String("request_id", middleware.GetRequestID(c)))
	}
	h.notifier.Success(c, loginPath, msgLoggedOut)
}

// lifetime is the cookie max age: the token's own expiry when it has one,
// capped by the configured session TTL.
func (h *AuthHandler) lifetime(session *auth.Session) time.Duration {
	if session.ExpiresAt.IsZero() {
		return h.cfg.TTL
	}
	if left := session.ExpiresAt.Sub(h.clock.Now()); left < h.cfg.TTL {
		return left
	}
	return h.cfg.TTL
}
