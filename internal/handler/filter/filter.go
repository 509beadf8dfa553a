// Package filter keeps the coupon list filters in the page's query string.
// The query string is the only filter state: every render parses it, and every
// change produces a new query string to navigate to.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"coupon-admin/internal/domain/coupon"
)

const (
	KeyStore           = "store"
	KeyActive          = "active"
	KeyIsValid         = "isValid"
	KeyFeaturedForHome = "featuredForHome"
	KeyPage            = "page"

	// StoreAll is the store selector's "no filter" option.
	StoreAll = "all"
)

var boolKeys = []string{KeyActive, KeyIsValid, KeyFeaturedForHome}

var labels = map[string]string{
	KeyActive:          "Active",
	KeyIsValid:         "Valid",
	KeyFeaturedForHome: "Featured for home",
}

// IsKey reports whether key is a recognized filter key.
func IsKey(key string) bool {
	if key == KeyStore {
		return true
	}
	for _, k := range boolKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Parse derives the filters from a query string. Booleans are set only by the
// exact value "true".
func Parse(q url.Values) coupon.Filter {
	return coupon.Filter{
		Store:           q.Get(KeyStore),
		Active:          q.Get(KeyActive) == "true",
		IsValid:         q.Get(KeyIsValid) == "true",
		FeaturedForHome: q.Get(KeyFeaturedForHome) == "true",
	}
}

// Page is the 1-based page in q, or 0 when absent or malformed.
func Page(q url.Values) int {
	n, err := strconv.Atoi(q.Get(KeyPage))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ListParams is what the coupon list asks the backend for.
func ListParams(q url.Values) coupon.ListParams {
	return coupon.ListParams{Filter: Parse(q), Page: Page(q)}
}

// Set returns a copy of current with key changed to value and the page reset
// to 1. A false-equivalent value removes the key, so the query never carries
// false-valued filters. current is not modified.
func Set(current url.Values, key, value string) url.Values {
	next := clone(current)
	next.Set(KeyPage, "1")
	if cleared(key, value) {
		next.Del(key)
	} else {
		next.Set(key, value)
	}
	return next
}

// Toggle flips a boolean filter.
func Toggle(current url.Values, key string) url.Values {
	if current.Get(key) == "true" {
		return Set(current, key, "")
	}
	return Set(current, key, "true")
}

// Clear is the bare path: every filter and the page go at once.
func Clear(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	return path
}

// HasAny decides whether the clear filters link is shown.
func HasAny(q url.Values) bool {
	return !Parse(q).IsZero()
}

// URL joins path and query, leaving off an empty query.
func URL(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// ToggleLink is a boolean filter rendered as a link that flips it.
type ToggleLink struct {
	Key     string
	Label   string
	Checked bool
	Href    string
}

// Toggles precomputes the toggle links for every boolean filter under path.
func Toggles(path string, q url.Values) []ToggleLink {
	out := make([]ToggleLink, 0, len(boolKeys))
	for _, k := range boolKeys {
		out = append(out, ToggleLink{
			Key:     k,
			Label:   labels[k],
			Checked: q.Get(k) == "true",
			Href:    URL(path, Toggle(q, k)),
		})
	}
	return out
}

func cleared(key, value string) bool {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return true
	case key == KeyStore:
		return value == StoreAll
	default:
		return value != "true"
	}
}

func clone(q url.Values) url.Values {
	next := make(url.Values, len(q)+1)
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}
	return next
}
