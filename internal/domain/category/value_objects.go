package category

import (
	"strings"

	"coupon-admin/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 200
)

var ErrNameRequired = errs.NewValidationError("name", "Category name is required")

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Active      *bool  `json:"active,omitempty"`
	Order       *int   `json:"order,omitempty"`
}

func (in *CreateInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)
	if in.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// ListParams are the optional category filters. Nil Active means "any".
type ListParams struct {
	Page   int
	Limit  int
	Active *bool
}

// Normalize applies the defaults the backend call is made with.
func (p ListParams) Normalize() ListParams {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
