package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"coupon-admin/internal/domain/category"
)

func (c *Client) FetchCategories(ctx context.Context, params category.ListParams) (*category.Page, error) {
	params = params.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(params.Limit))
	if params.Active != nil {
		q.Set("active", strconv.FormatBool(*params.Active))
	}

	rc := call{op: "fetch_categories", method: http.MethodGet, path: "/categories", query: q, fallback: "Failed to fetch categories"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Data *category.Page `json:"data"`
	}
	if err := c.decode(rc, body, &payload); err != nil {
		return nil, err
	}
	page := payload.Data
	if page == nil {
		page = &category.Page{CurrentPage: params.Page}
	}
	if page.Categories == nil {
		page.Categories = []category.Category{}
	}
	return page, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*category.Category, error) {
	rc := call{op: "get_category", method: http.MethodGet, path: "/categories/" + url.PathEscape(id), fallback: "Failed to fetch category"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var found category.Category
	if err := c.decodeEntity(rc, body, "category", &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (c *Client) CreateCategory(ctx context.Context, in category.CreateInput, token string) (*category.Category, error) {
	rc := call{op: "create_category", method: http.MethodPost, path: "/categories", body: in, token: token, fallback: "Failed to create category"}
	body, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}
	var created category.Category
	if err := c.decodeEntity(rc, body, "category", &created); err != nil {
		return nil, err
	}
	return &created, nil
}
