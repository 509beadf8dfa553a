package web

import (
	"net/http"

	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/render"
	"coupon-admin/internal/handler/templates/pages"

	"github.com/gin-gonic/gin"
)

type NotFoundHandler struct {
	filters *FilterHandler
}

func NewNotFoundHandler(filters *FilterHandler) *NotFoundHandler {
	return &NotFoundHandler{filters: filters}
}

// Handle answers unknown paths. The filter panel is still offered so the
// admin can get back to the coupon list with a single change.
func (h *NotFoundHandler) Handle(c *gin.Context) {
	render.Component(c, http.StatusNotFound, pages.NotFound(response.NotFoundPage{
		Layout:  layout(c, "Page Not Found", ""),
		Path:    c.Request.URL.Path,
		Filters: h.filters.Panel(c),
	}))
}
