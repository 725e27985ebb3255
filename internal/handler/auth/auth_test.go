package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/askarthikey/sellerPro/internal/service"
	"github.com/askarthikey/sellerPro/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func restoreGlobals() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken = service.RevokeRefreshToken
	getUserByUsername = store.GetUserByUsername
	createUser = store.CreateUser
	touchUserLastLogin = store.TouchUserLastLogin
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

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
