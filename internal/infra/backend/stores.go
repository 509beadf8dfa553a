package backend

import (
	"context"
	"net/http"
	"net/url"

	"coupon-admin/internal/domain/store"
)

func (c *Client) FetchStores(ctx context.Context) ([]store.Store, error) {
	rc := call{op: "fetch_stores", method: http.MethodGet, path: "/stores", fallback: "Failed to fetch stores"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Stores []store.Store `json:"stores"`
	}
	if err := c.decode(rc, body, &payload); err != nil {
		return nil, err
	}
	if payload.Stores == nil {
		return []store.Store{}, nil
	}
	return payload.Stores, nil
}

func (c *Client) CreateStore(ctx context.Context, in store.CreateInput, token string) (*store.Store, error) {
	rc := call{op: "create_store", method: http.MethodPost, path: "/stores", body: in, token: token, fallback: "Failed to create store"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var created store.Store
	if err := c.decodeEntity(rc, body, "store", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteStore(ctx context.Context, id string, token string) error {
	rc := call{op: "delete_store", method: http.MethodDelete, path: "/stores/" + url.PathEscape(id), token: token, fallback: "Failed to delete store"}
	_, err := c.do(ctx, rc)
	return err
}
