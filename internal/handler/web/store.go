package web

import (
	"log/slog"
	"net/http"

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

const storesPath = "/stores"

type StoreHandler struct {
	cmds     commands.StoreCommands
	q        queries.StoreQueries
	notifier *Notifier
	logger   *slog.Logger
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries, notifier *Notifier, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q, notifier: notifier, logger: logger}
}

func (h *StoreHandler) Index(c *gin.Context) {
	page := response.StoresPage{
		Layout: layout(c, "Stores", "stores"),
		Stores: []response.StoreCard{},
	}

	stores, err := h.q.List(c.Request.Context())
	if err != nil {
		if aborted(err) {
			return
		}
		page.Notices = append(page.Notices, response.ErrorNotice(infra.Message(err, "Failed to fetch stores")))
		render.Component(c, http.StatusOK, pages.Stores(page))
		return
	}

	for _, s := range stores {
		page.Stores = append(page.Stores, response.FromStore(s, h.cmds.Deleting(s.ID)))
	}
	page.Loaded = true
	render.Component(c, http.StatusOK, pages.Stores(page))
}

func (h *StoreHandler) Create(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		h.notifier.Error(c, storesPath, msgLoginRequired)
		return
	}

	var form reqdto.CreateStoreForm
	if err := c.ShouldBind(&form); err != nil {
		h.notifier.Error(c, storesPath, validation.FromBindError(err, &form).First())
		return
	}
	in, err := form.ToDomain()
	if err != nil {
		h.notifier.Error(c, storesPath, "Failed to create store")
		return
	}

	if _, err := h.cmds.Create(c.Request.Context(), in, token); err != nil {
		if aborted(err) {
			h.notifier.Silent(c, storesPath)
			return
		}
		h.notifier.Error(c, storesPath, messageFor(err, "Failed to create store"))
		return
	}
	h.notifier.Success(c, storesPath, "Store created successfully")
}

func (h *StoreHandler) Delete(c *gin.Context) {
	token, _ := middleware.GetToken(c)

	if err := h.cmds.Delete(c.Request.Context(), c.Param("id"), token); err != nil {
		if aborted(err) {
			h.notifier.Silent(c, storesPath)
			return
		}
		h.notifier.Error(c, storesPath, messageFor(err, msgDeleteFailed))
		return
	}
	h.notifier.Success(c, storesPath, msgDeleted)
}
