package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/filter"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const listPath = "/"

type FilterHandler struct {
	stores queries.StoreQueries
	logger *slog.Logger
}

func NewFilterHandler(stores queries.StoreQueries, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{stores: stores, logger: logger}
}

// Navigate applies one filter change to the query in `from` and sends the
// browser to the coupon list with the result.
func (h *FilterHandler) Navigate(c *gin.Context) {
	from, err := url.ParseQuery(c.Query("from"))
	if err != nil {
		from = url.Values{}
	}

	key := c.Query("key")
	if !filter.IsKey(key) {
		c.Redirect(http.StatusSeeOther, filter.URL(listPath, from))
		return
	}

	next := filter.Set(from, key, c.Query("value"))
	c.Redirect(http.StatusSeeOther, filter.URL(listPath, next))
}

// Panel builds the filter block from the current query string. Stores are
// only fetched for a logged-in admin, and with the request's context: a
// client that goes away cancels the fetch and nobody is told.
func (h *FilterHandler) Panel(c *gin.Context) response.FiltersPanel {
	q := c.Request.URL.Query()
	current := filter.Parse(q)

	panel := response.FiltersPanel{
		From:       q.Encode(),
		StoreValue: current.Store,
		Toggles:    filter.Toggles(listPath, q),
		HasAny:     filter.HasAny(q),
		ClearHref:  filter.Clear(listPath),
		Stores:     []response.StoreOption{},
	}

	if _, ok := middleware.GetToken(c); !ok {
		notice := response.InfoNotice("Please log in to view stores")
		panel.Notice = &notice
		return panel
	}

	stores, err := h.stores.List(c.Request.Context())
	if err != nil {
		if aborted(err) {
			h.logger.Debug("Store fetch for filters cancelled", slog.String("request_id", middleware.GetRequestID(c)))
			return panel
		}
		notice := response.ErrorNotice(infra.Message(err, "Failed to fetch stores"))
		panel.Notice = &notice
		return panel
	}

	panel.Stores = response.StoreOptions(stores, current.Store)
	return panel
}
