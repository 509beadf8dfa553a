package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"coupon-admin/internal/domain/coupon"
)

func (c *Client) FetchCoupons(ctx context.Context, params coupon.ListParams) ([]coupon.Coupon, error) {
	rc := call{op: "fetch_coupons", method: http.MethodGet, path: "/coupons", query: couponQuery(params), fallback: "Failed to fetch coupons"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Data []coupon.Coupon `json:"data"`
	}
	if err := c.decode(rc, body, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []coupon.Coupon{}, nil
	}
	return payload.Data, nil
}

func (c *Client) CreateCoupon(ctx context.Context, in coupon.CreateInput, token string) (*coupon.Coupon, error) {
	rc := call{op: "create_coupon", method: http.MethodPost, path: "/coupons", body: in, token: token, fallback: "Failed to create coupon"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var created coupon.Coupon
	if err := c.decodeEntity(rc, body, "coupon", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id string, token string) error {
	rc := call{op: "delete_coupon", method: http.MethodDelete, path: "/coupons/" + url.PathEscape(id), token: token, fallback: "Failed to delete coupon"}
	_, err := c.do(ctx, rc)
	return err
}

// TrackCoupon bumps the coupon's hit counter on the backend.
func (c *Client) TrackCoupon(ctx context.Context, id string) error {
	rc := call{op: "track_coupon", method: http.MethodPost, path: "/coupons/" + url.PathEscape(id) + "/track", fallback: "Failed to track coupon"}
	_, err := c.do(ctx, rc)
	return err
}

// couponQuery only carries set filters, so an unfiltered list is a bare GET /coupons.
func couponQuery(params coupon.ListParams) url.Values {
	q := url.Values{}
	f := params.Filter
	if f.Store != "" {
		q.Set("store", f.Store)
	}
	if f.Active {
		q.Set("active", "true")
	}
	if f.IsValid {
		q.Set("isValid", "true")
	}
	if f.FeaturedForHome {
		q.Set("featuredForHome", "true")
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	return q
}
