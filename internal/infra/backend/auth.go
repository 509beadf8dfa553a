package backend

import (
	"context"
	"net/http"

	"coupon-admin/internal/infra"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for the backend's bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	rc := call{op: "login", method: http.MethodPost, path: "/auth/login", body: loginRequest{Email: email, Password: password}, fallback: "Login failed"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return "", err
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.decode(rc, body, &payload); err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", infra.WrapGatewayErr(c.logger, infra.KindDecode, rc.op, http.StatusOK, rc.fallback, nil)
	}
	return payload.Token, nil
}
