package api

import (
	"net/http"

	"coupon-admin/internal/handler/httperr"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
}

func NewCouponHandler(cmds commands.CouponCommands) *CouponHandler {
	return &CouponHandler{cmds: cmds}
}

// @Summary Track coupon usage
// @Description Record one use of a coupon on the backend
// @Tags coupons
// @Param id path string true "Coupon ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/coupons/{id}/track [post]
func (h *CouponHandler) Track(c *gin.Context) {
	err := h.cmds.Track(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case infra.IsKind(err, infra.KindAborted):
		c.Abort()
	case errs.Is(err, errs.ErrInvalidID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, infra.Message(err, "Failed to track coupon usage"), nil)
	}
}
