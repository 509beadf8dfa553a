package coupon

import (
	"bytes"
	"encoding/json"
	"time"

	"coupon-admin/internal/domain/store"
)

// StoreRef is the store a coupon points at. The backend sends either the bare
// identifier or a denormalized summary; both decode into the same shape.
type StoreRef struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name,omitempty"`
	TrackingURL string       `json:"trackingUrl,omitempty"`
	Image       *store.Image `json:"image,omitempty"`
}

func (r *StoreRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = StoreRef{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = StoreRef{ID: id}
		return nil
	}
	type summary StoreRef
	var s summary
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = StoreRef(s)
	return nil
}

// DisplayName is what a coupon card shows for its store.
func (r StoreRef) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return "Unknown Store"
}

func (r StoreRef) ImageAlt() string {
	if r.Image != nil && r.Image.Alt != "" {
		return r.Image.Alt
	}
	return r.Name
}

func (r StoreRef) HasImage() bool {
	return r.Image != nil && r.Image.URL != ""
}

type Coupon struct {
	ID              string     `json:"_id"`
	OfferDetails    string     `json:"offerDetails"`
	Code            string     `json:"code,omitempty"`
	Active          bool       `json:"active"`
	IsValid         bool       `json:"isValid"`
	FeaturedForHome bool       `json:"featuredForHome"`
	ExpirationDate  *time.Time `json:"expirationDate,omitempty"`
	Hits            int        `json:"hits,omitempty"`
	Store           StoreRef   `json:"store"`
}

// UnmarshalJSON reads expirationDate leniently: blank strings and null mean no
// date, and a value that matches none of the known layouts is dropped.
func (c *Coupon) UnmarshalJSON(b []byte) error {
	type plain Coupon
	aux := struct {
		*plain
		ExpirationDate *string `json:"expirationDate"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.ExpirationDate = nil
	if aux.ExpirationDate != nil {
		c.ExpirationDate, _ = ParseExpiration(*aux.ExpirationDate)
	}
	return nil
}

func (c Coupon) IsExpiredAt(t time.Time) bool {
	return c.ExpirationDate != nil && t.After(*c.ExpirationDate)
}
