package response

import (
	"coupon-admin/internal/handler/filter"
	"coupon-admin/internal/handler/flash"
	"coupon-admin/internal/handler/validation"
)

// Notice is a message rendered on the page itself, for conditions found while
// loading it. Redirect outcomes travel as a flash instead.
type Notice struct {
	Kind    flash.Kind
	Message string
}

func ErrorNotice(msg string) Notice {
	return Notice{Kind: flash.KindError, Message: msg}
}

func InfoNotice(msg string) Notice {
	return Notice{Kind: flash.KindInfo, Message: msg}
}

// Layout is what every page template needs for its chrome.
type Layout struct {
	Title     string
	Nav       string
	LoggedIn  bool
	RequestID string
	Flash     *flash.Flash
	Notices   []Notice
}

type StoreOption struct {
	ID       string
	Name     string
	Selected bool
}

// FiltersPanel is the coupon filter block. It is also embedded in the 404 page.
type FiltersPanel struct {
	// From is the current query string, echoed back to /filters.
	From       string
	Stores     []StoreOption
	StoreValue string
	Toggles    []filter.ToggleLink
	HasAny     bool
	ClearHref  string
	Notice     *Notice
}

type CouponsPage struct {
	Layout
	Filters  FiltersPanel
	Coupons  []CouponCard
	Loaded   bool
	Form     CouponFormView
	ReturnTo string
}

type CouponFormView struct {
	Active  bool
	IsValid bool
}

type StoresPage struct {
	Layout
	Stores []StoreCard
	Loaded bool
}

type CategoriesPage struct {
	Layout
	Categories []CategoryResponse
	Total      int
	Page       int
	TotalPages int
	PrevHref   string
	NextHref   string
	Active     string
	Loaded     bool
}

type LoginPage struct {
	Layout
	Email  string
	Errors validation.FieldErrors
	Error  string
}

type NotFoundPage struct {
	Layout
	Path    string
	Filters FiltersPanel
}
