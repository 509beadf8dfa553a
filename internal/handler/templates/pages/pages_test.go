//go:build unit

package pages_test

import (
	"bytes"
	"context"
	"testing"

	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/filter"
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/handler/templates/pages"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLayout(t *testing.T) {
	t.Run("logged in with flash and notices", func(t *testing.T) {
		body := renderString(t, pages.Login(response.LoginPage{Layout: response.Layout{
			Title:    "Log in",
			Nav:      "login",
			LoggedIn: true,
			Flash:    &flash.Flash{Kind: flash.KindSuccess, Message: "Logged out"},
			Notices:  []response.Notice{response.ErrorNotice("Backend <down>")},
		}}))

		assert.Contains(t, body, "<title>Log in · Coupon Admin</title>")
		assert.Contains(t, body, "Log out")
		assert.Contains(t, body, `class="notice notice-success"`)
		assert.Contains(t, body, "Logged out")
		assert.Contains(t, body, "Backend &lt;down&gt;")
	})

	t.Run("anonymous marks the current nav entry", func(t *testing.T) {
		body := renderString(t, pages.Login(response.LoginPage{Layout: response.Layout{Nav: "login"}}))

		assert.Contains(t, body, `<a href="/login" aria-current="page">Log in</a>`)
		assert.NotContains(t, body, "Log out")
	})
}

func TestFilters(t *testing.T) {
	body := renderString(t, pages.Filters(response.FiltersPanel{
		From:       "?store=s1&isValid=true",
		Stores:     []response.StoreOption{{ID: "s1", Name: "Acme", Selected: true}, {ID: "s2", Name: "Beta"}},
		StoreValue: "s1",
		Toggles: []filter.ToggleLink{
			{Key: "isValid", Label: "Valid", Checked: true, Href: "/?store=s1"},
			{Key: "active", Label: "Active", Href: "/?active=true&store=s1"},
		},
		HasAny:    true,
		ClearHref: "/",
	}))

	assert.Contains(t, body, `<option value="all">All stores</option>`)
	assert.Contains(t, body, `<option value="s1" selected>Acme</option>`)
	assert.Contains(t, body, `<option value="s2">Beta</option>`)
	assert.Contains(t, body, `value="?store=s1&amp;isValid=true"`)
	assert.Contains(t, body, `aria-checked="true" data-filter="isValid">☑ Valid</a>`)
	assert.Contains(t, body, `href="/?active=true&amp;store=s1"`)
	assert.Contains(t, body, `<a class="clear-filters" href="/">Clear filters</a>`)
}

func TestCoupons(t *testing.T) {
	t.Run("cards", func(t *testing.T) {
		body := renderString(t, pages.Coupons(response.CouponsPage{
			Loaded:   true,
			ReturnTo: "?isValid=true",
			Form:     response.CouponFormView{Active: true},
			Coupons: []response.CouponCard{{
				ID:           "c1",
				OfferDetails: "10% off",
				StoreName:    "Acme",
				StoreURL:     "https://acme.example",
				Expires:      "2025-12-31 18:30",
				Expired:      true,
				Deleting:     true,
			}},
		}))

		assert.Contains(t, body, `<input type="datetime-local" name="expirationDate">`)
		assert.Contains(t, body, `<input type="checkbox" name="active" value="true" checked>`)
		assert.Contains(t, body, `<h3 class="offer">10% off</h3>`)
		assert.Contains(t, body, `<a href="https://acme.example" rel="noopener" target="_blank">Acme</a>`)
		assert.Contains(t, body, `<span class="expired">Expires 2025-12-31 18:30</span>`)
		assert.Contains(t, body, `action="/coupons/c1/delete"`)
		assert.Contains(t, body, `<button type="submit" disabled>Deleting...</button>`)
		assert.NotContains(t, body, "No coupons found.")
	})

	t.Run("empty list", func(t *testing.T) {
		body := renderString(t, pages.Coupons(response.CouponsPage{Loaded: true}))
		assert.Contains(t, body, "No coupons found.")
	})

	t.Run("unsafe store links are neutralised", func(t *testing.T) {
		body := renderString(t, pages.Coupons(response.CouponsPage{
			Loaded:  true,
			Coupons: []response.CouponCard{{ID: "c1", StoreName: "Acme", StoreURL: "javascript:alert(1)"}},
		}))
		assert.NotContains(t, body, "javascript:")
	})
}

func TestCategories(t *testing.T) {
	body := renderString(t, pages.Categories(response.CategoriesPage{
		Loaded:     true,
		Categories: []response.CategoryResponse{{ID: "k1", Name: "Electronics", Order: 3, Active: true}},
		Total:      21,
		Page:       1,
		TotalPages: 3,
		NextHref:   "/categories?limit=10&page=2",
		Active:     "true",
	}))

	assert.Contains(t, body, `<option value="true" selected>Active</option>`)
	assert.Contains(t, body, `<tr id="category-k1"><td>3</td>`)
	assert.Contains(t, body, "21 categories")
	assert.Contains(t, body, "Page 1 of 3")
	assert.Contains(t, body, `href="/categories?limit=10&amp;page=2" rel="next"`)
	assert.NotContains(t, body, `rel="prev"`)
}

func TestLoginFieldErrors(t *testing.T) {
	body := renderString(t, pages.Login(response.LoginPage{
		Email:  "a@b.c",
		Errors: map[string]string{"password": "Password is required."},
	}))

	assert.Contains(t, body, `value="a@b.c"`)
	assert.Contains(t, body, `<p class="field-error">Password is required.</p>`)
	assert.Equal(t, 1, bytes.Count([]byte(body), []byte("field-error")))
}

func TestNotFound(t *testing.T) {
	body := renderString(t, pages.NotFound(response.NotFoundPage{Path: "/nope"}))

	assert.Contains(t, body, "<code>/nope</code>")
	assert.Contains(t, body, `<section class="filters">`)
	assert.NotContains(t, body, "Clear filters")
}
