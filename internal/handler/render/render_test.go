//go:build unit

package render_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coupon-admin/internal/handler/render"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes status and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		render.Component(c, http.StatusNotFound, templ.Raw("<p>gone</p>"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>gone</p>", w.Body.String())
	})

	t.Run("records render errors on the context", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		boom := errors.New("boom")

		render.Component(c, http.StatusOK, templ.ComponentFunc(func(context.Context, io.Writer) error {
			return boom
		}))

		require.Len(t, c.Errors, 1)
		assert.ErrorIs(t, c.Errors[0].Err, boom)
		assert.False(t, c.Writer.Written())
	})
}
