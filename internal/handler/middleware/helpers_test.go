//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"

	"github.com/gin-gonic/gin"
)

func performWithHeader(r *gin.Engine, key, value string) *stdhttptest.ResponseRecorder {
	req := stdhttptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(key, value)
	w := stdhttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
