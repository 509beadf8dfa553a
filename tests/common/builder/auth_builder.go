//go:build unit || e2e

package builder

import (
	"net/url"

	reqdto "coupon-admin/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "admin@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginForm {
	return reqdto.LoginForm{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildForm() url.Values {
	return url.Values{
		"email":    {a.Email},
		"password": {a.Password},
	}
}
