//go:build unit

package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	reqdto "coupon-admin/internal/handler/dto/request"
	"coupon-admin/internal/handler/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindForm(t *testing.T, form url.Values, dst any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c.ShouldBind(dst)
}

func TestFromBindErrorUsesFormNames(t *testing.T) {
	var form reqdto.CreateCouponForm
	err := bindForm(t, url.Values{
		"store":        {"not-an-id"},
		"offerDetails": {strings.Repeat("x", 501)},
	}, &form)
	require.Error(t, err)

	got := validation.FromBindError(err, &form)
	assert.Equal(t, validation.FieldErrors{
		"store":        "Must be a valid identifier.",
		"offerDetails": "Must be at most 500.",
	}, got)
	assert.Equal(t, "offerDetails: Must be at most 500.", got.First())
}

func TestFromBindErrorLogin(t *testing.T) {
	var form reqdto.LoginForm
	err := bindForm(t, url.Values{"email": {"nope"}}, &form)
	require.Error(t, err)

	got := validation.FromBindError(err, &form)
	assert.Equal(t, "Enter a valid email address.", got["email"])
	assert.Equal(t, "This field is required.", got["password"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	got := validation.FromBindError(errors.New("strconv.ParseBool: parsing \"yes\""), &reqdto.CreateCouponForm{})
	assert.Equal(t, validation.FieldErrors{"_": "The submitted form is invalid."}, got)
}

func TestFirstOnEmpty(t *testing.T) {
	assert.Empty(t, validation.FieldErrors{}.First())
}
