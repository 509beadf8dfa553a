package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	reqdto "coupon-admin/internal/handler/dto/request"
	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/handler/render"
	"coupon-admin/internal/handler/templates/pages"
	"coupon-admin/internal/handler/validation"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const categoriesPath = "/categories"

type CategoryHandler struct {
	cmds     commands.CategoryCommands
	q        queries.CategoryQueries
	notifier *Notifier
	logger   *slog.Logger
}

func NewCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries, notifier *Notifier, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q, notifier: notifier, logger: logger}
}

func (h *CategoryHandler) Index(c *gin.Context) {
	page := response.CategoriesPage{
		Layout:     layout(c, "Categories", "categories"),
		Categories: []response.CategoryResponse{},
	}

	var query reqdto.ListCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		page.Notices = append(page.Notices, response.ErrorNotice(validation.FromBindError(err, &query).First()))
		render.Component(c, http.StatusBadRequest, pages.Categories(page))
		return
	}
	page.Active = query.Active

	params := query.ToParams().Normalize()
	result, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		if aborted(err) {
			return
		}
		page.Notices = append(page.Notices, response.ErrorNotice(infra.Message(err, "Failed to fetch categories")))
		render.Component(c, http.StatusOK, pages.Categories(page))
		return
	}

	page.Categories = response.FromCategories(result.Categories)
	page.Total = result.TotalCategories
	page.Page = result.CurrentPage
	page.TotalPages = result.TotalPages
	if result.HasPrev() {
		page.PrevHref = categoriesPageURL(result.CurrentPage-1, params.Limit, query.Active)
	}
	if result.HasNext() {
		page.NextHref = categoriesPageURL(result.CurrentPage+1, params.Limit, query.Active)
	}
	page.Loaded = true
	render.Component(c, http.StatusOK, pages.Categories(page))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		h.notifier.Error(c, categoriesPath, msgLoginRequired)
		return
	}

	var form reqdto.CreateCategoryForm
	if err := c.ShouldBind(&form); err != nil {
		h.notifier.Error(c, categoriesPath, validation.FromBindError(err, &form).First())
		return
	}
	in, err := form.ToDomain()
	if err != nil {
		h.notifier.Error(c, categoriesPath, "Failed to create category")
		return
	}

	if _, err := h.cmds.Create(c.Request.Context(), in, token); err != nil {
		if aborted(err) {
			h.notifier.Silent(c, categoriesPath)
			return
		}
		h.notifier.Error(c, categoriesPath, messageFor(err, "Failed to create category"))
		return
	}
	h.notifier.Success(c, categoriesPath, "Category created successfully")
}

func categoriesPageURL(page, limit int, active string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if active != "" {
		q.Set("active", active)
	}
	return categoriesPath + "?" + q.Encode()
}
