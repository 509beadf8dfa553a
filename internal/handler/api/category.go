package api

import (
	"net/http"

	resdto "coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/httperr"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	q queries.CategoryQueries
}

func NewCategoryHandler(q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{q: q}
}

// @Summary Get category
// @Description Get a single category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	found, err := h.q.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.FromCategory(found))
	case infra.IsKind(err, infra.KindAborted):
		c.Abort()
	case errs.Is(err, errs.ErrInvalidID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id", nil)
	case errs.Is(err, queries.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, infra.Message(err, "Failed to fetch category"), nil)
	}
}
