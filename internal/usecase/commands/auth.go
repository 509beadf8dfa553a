package commands

import (
	"context"
	"log/slog"

	"coupon-admin/internal/domain/auth"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/errs"
)

var ErrAuthenticationFailed = errs.New("authentication failed")

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}

type authCommandsImpl struct {
	gateway   AuthGateway
	inspector TokenInspector
	clock     clock.Clock
	logger    *slog.Logger
}

func NewAuthCommands(gateway AuthGateway, inspector TokenInspector, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway:   gateway,
		inspector: inspector,
		clock:     clk,
		logger:    logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	credentials, err := auth.NewCredentials(email, password)
	if err != nil {
		return nil, err
	}

	token, err := a.gateway.Login(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	session := &auth.Session{Token: token}
	if exp, ok := a.inspector.ExpiresAt(token); ok {
		session.ExpiresAt = exp
	}
	if session.ExpiredAt(a.clock.Now()) {
		return nil, errs.Mark(errs.New("backend issued an expired token"), ErrAuthenticationFailed)
	}

	a.logger.Info("Admin logged in", slog.String("email", credentials.Email().Value()))
	return session, nil
}
