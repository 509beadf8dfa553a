package coupon

import (
	"strings"
	"time"

	"coupon-admin/internal/pkg/errs"
)

var (
	ErrOfferDetailsRequired = errs.NewValidationError("offerDetails", "Offer details are required")
	ErrStoreRequired        = errs.NewValidationError("store", "Store ID is required")
	ErrInvalidExpiration    = errs.NewValidationError("expirationDate", "Expiration date must look like 2025-12-31 or 2025-12-31T18:30")
)

// ExpirationLayouts are tried in order. The last two are what a browser posts
// for datetime-local and date inputs; values without a zone are UTC.
var ExpirationLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseExpiration returns nil for a blank value.
func ParseExpiration(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range ExpirationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidExpiration
}

// CreateInput is the body of a coupon creation. Store is the store identifier.
type CreateInput struct {
	OfferDetails    string     `json:"offerDetails"`
	Code            string     `json:"code,omitempty"`
	Store           string     `json:"store"`
	Active          bool       `json:"active"`
	IsValid         bool       `json:"isValid"`
	FeaturedForHome bool       `json:"featuredForHome"`
	ExpirationDate  *time.Time `json:"expirationDate,omitempty"`
}

// NewCreateInput returns the defaults the create form starts from.
func NewCreateInput() CreateInput {
	return CreateInput{Active: true, IsValid: true}
}

func (in *CreateInput) Validate() error {
	in.OfferDetails = strings.TrimSpace(in.OfferDetails)
	in.Code = strings.TrimSpace(in.Code)
	in.Store = strings.TrimSpace(in.Store)

	if in.OfferDetails == "" {
		return ErrOfferDetailsRequired
	}
	if in.Store == "" {
		return ErrStoreRequired
	}
	return nil
}

// Filter narrows the coupon list. The zero value means no filtering.
type Filter struct {
	Store           string
	Active          bool
	IsValid         bool
	FeaturedForHome bool
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

type ListParams struct {
	Filter Filter
	// Page is 1-based; zero leaves paging to the backend.
	Page int
}
