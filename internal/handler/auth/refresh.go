package auth

import (
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/cache"
	"github.com/askarthikey/sellerPro/internal/database"

	"github.com/labstack/echo/v4"
)

// RefreshHandler exchanges a stored refresh token for a new access
// token. Tokens resolving to a deleted or blocked account are revoked
// on the spot.
// @Summary     Refresh the access token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.RefreshRequest true "refresh token"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /userApi/refresh [post]
func RefreshHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		data, err := validateRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}

		user, err := getUserByUsername(c.Request().Context(), db, data.Username)
		if err != nil {
			_ = revokeRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}
		if user.IsBlocked {
			_ = revokeRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "You have been blocked. Please contact admin for more details!!"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusOK, api.TokenResponse{Token: token})
	}
}
