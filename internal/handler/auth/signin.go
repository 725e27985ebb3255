package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/cache"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/worker"

	"github.com/labstack/echo/v4"
)

// SigninHandler verifies credentials and issues the access and refresh
// tokens. Failures are signaled by status code: the original API
// answered signin failures with HTTP 200 and a message body, unlike
// every other endpoint; here status codes are used throughout.
// @Summary     Sign in
// @Description Verifies username/password and returns a JWT plus a refresh token.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.SigninRequest true "credentials"
// @Success     200 {object} api.SigninResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /userApi/signin [post]
func SigninHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SigninRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid Credentials - User not found in DB"})
		}
		if user.IsBlocked {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "You have been blocked. Please contact admin for more details!!"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect Password!! Please try again"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, user.Username, user.IsAdmin, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		// Stamp last_login_at off the request path.
		username := user.Username
		wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := touchUserLastLogin(ctx, db, username); err != nil {
				log.Printf("touch last login for %s: %v", username, err)
			}
		})

		return c.JSON(http.StatusOK, api.SigninResponse{
			Message:      "Login Successful!!",
			Token:        token,
			RefreshToken: refreshToken,
			User:         api.NewUserResponse(user),
		})
	}
}
