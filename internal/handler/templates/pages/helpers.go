// Package pages holds the templ components for every HTML page. The
// *_templ.go files are generated from the .templ sources by `mage gen`.
package pages

import "coupon-admin/internal/handler/filter"

func toggleText(t filter.ToggleLink) string {
	if t.Checked {
		return "☑ " + t.Label
	}
	return "☐ " + t.Label
}
