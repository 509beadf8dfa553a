package store

import (
	"strings"

	"coupon-admin/internal/pkg/errs"
)

var (
	ErrNameRequired             = errs.NewValidationError("name", "Store name is required")
	ErrTrackingURLRequired      = errs.NewValidationError("trackingUrl", "Tracking URL is required")
	ErrShortDescriptionRequired = errs.NewValidationError("short_description", "Short description is required")
)

// CreateInput is the partial store sent on creation.
type CreateInput struct {
	Name             string   `json:"name"`
	TrackingURL      string   `json:"trackingUrl"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description,omitempty"`
	Image            *Image   `json:"image,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	SEO              *SEO     `json:"seo,omitempty"`
	Language         string   `json:"language,omitempty"`
	IsTopStore       bool     `json:"isTopStore"`
	IsEditorsChoice  bool     `json:"isEditorsChoice"`
	Heading          string   `json:"heading,omitempty"`
}

// Validate trims the input in place and checks the fields the backend requires.
func (in *CreateInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.TrackingURL = strings.TrimSpace(in.TrackingURL)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)

	switch {
	case in.Name == "":
		return ErrNameRequired
	case in.TrackingURL == "":
		return ErrTrackingURLRequired
	case in.ShortDescription == "":
		return ErrShortDescriptionRequired
	}

	if in.Image != nil && strings.TrimSpace(in.Image.URL) == "" {
		in.Image = nil
	}
	if in.SEO != nil && *in.SEO == (SEO{}) {
		in.SEO = nil
	}
	return nil
}

// SplitCategories turns a comma separated form value into category ids.
func SplitCategories(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
