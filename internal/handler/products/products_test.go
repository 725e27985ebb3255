package products

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/askarthikey/sellerPro/internal/middleware"
	"github.com/askarthikey/sellerPro/internal/model"
	"github.com/askarthikey/sellerPro/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func restoreGlobals() {
	createProduct = store.CreateProduct
	listProductsBySeller = store.ListProductsBySeller
	getProductByID = store.GetProductByID
	updateProduct = store.UpdateProduct
	deleteProduct = store.DeleteProduct
}

type testValidator struct {
	v *validator.Validate
}

func (tv testValidator) Validate(i any) error {
	if err := tv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// newContext builds an authenticated request context the way the router
// would after RequireAuth ran.
func newContext(t *testing.T, method, path, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func seller(name string) *model.User {
	return &model.User{Username: name}
}
