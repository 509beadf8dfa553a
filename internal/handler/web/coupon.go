package web

import (
	"log/slog"
	"net/http"
	"net/url"

	reqdto "coupon-admin/internal/handler/dto/request"
	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/filter"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/render"
	"coupon-admin/internal/handler/templates/pages"
	"coupon-admin/internal/handler/validation"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds     commands.CouponCommands
	q        queries.CouponQueries
	filters  *FilterHandler
	notifier *Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries, filters *FilterHandler, notifier *Notifier, clk clock.Clock, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		cmds:     cmds,
		q:        q,
		filters:  filters,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Index renders the coupon list for the filters in the query string.
func (h *CouponHandler) Index(c *gin.Context) {
	q := c.Request.URL.Query()
	page := response.CouponsPage{
		Layout:   layout(c, "Coupons", "coupons"),
		Filters:  h.filters.Panel(c),
		Form:     response.CouponFormView{Active: true, IsValid: true},
		ReturnTo: q.Encode(),
		Coupons:  []response.CouponCard{},
	}

	if _, ok := middleware.GetToken(c); !ok {
		page.Notices = append(page.Notices, response.ErrorNotice("Please login to view or manage coupons"))
		render.Component(c, http.StatusOK, pages.Coupons(page))
		return
	}

	coupons, err := h.q.List(c.Request.Context(), filter.ListParams(q))
	if err != nil {
		if aborted(err) {
			return
		}
		page.Notices = append(page.Notices, response.ErrorNotice("Failed to load coupons"))
		render.Component(c, http.StatusOK, pages.Coupons(page))
		return
	}

	now := h.clock.Now()
	for _, cp := range coupons {
		page.Coupons = append(page.Coupons, response.FromCoupon(cp, now, h.cmds.Deleting(cp.ID)))
	}
	page.Loaded = true
	render.Component(c, http.StatusOK, pages.Coupons(page))
}

func (h *CouponHandler) Create(c *gin.Context) {
	back := returnTo(c.PostForm("from"))

	token, ok := middleware.GetToken(c)
	if !ok {
		h.notifier.Error(c, back, msgLoginRequired)
		return
	}

	var form reqdto.CreateCouponForm
	if err := c.ShouldBind(&form); err != nil {
		h.notifier.Error(c, back, validation.FromBindError(err, &form).First())
		return
	}
	in, err := form.ToDomain()
	if err != nil {
		h.notifier.Error(c, back, messageFor(err, "Failed to create coupon"))
		return
	}

	if _, err := h.cmds.Create(c.Request.Context(), in, token); err != nil {
		if aborted(err) {
			h.notifier.Silent(c, back)
			return
		}
		h.notifier.Error(c, back, messageFor(err, "Failed to create coupon"))
		return
	}
	h.notifier.Success(c, back, "Coupon created successfully")
}

func (h *CouponHandler) Delete(c *gin.Context) {
	back := returnTo(c.PostForm("from"))
	token, _ := middleware.GetToken(c)

	if err := h.cmds.Delete(c.Request.Context(), c.Param("id"), token); err != nil {
		if aborted(err) {
			h.notifier.Silent(c, back)
			return
		}
		h.notifier.Error(c, back, messageFor(err, msgDeleteFailed))
		return
	}
	h.notifier.Success(c, back, msgDeleted)
}

// returnTo rebuilds the list URL from a posted query string. Only the query is
// taken from the client; the path is always the list.
func returnTo(rawQuery string) string {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return listPath
	}
	return filter.URL(listPath, q)
}
