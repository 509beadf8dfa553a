//go:build unit || e2e

package testutil

import "net/url"

// Form copies a submitted form and applies muts to the copy.
func Form(base url.Values, muts ...func(url.Values)) url.Values {
	out := make(url.Values, len(base))
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for _, f := range muts {
		f(out)
	}
	return out
}

// Field sets key to value, or removes it when value is empty: an unticked
// checkbox or a blank field that the browser leaves out.
func Field(key, value string) func(url.Values) {
	return func(v url.Values) {
		if value == "" {
			v.Del(key)
		} else {
			v.Set(key, value)
		}
	}
}
