// Package users holds the admin-only account operations. The seller
// data model carries isAdmin and isBlocked flags; these handlers are
// the surface that mutates the latter.
package users

import (
	"errors"
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listUsers         = store.ListUsers
	getUserByUsername = store.GetUserByUsername
	setUserBlocked    = store.SetUserBlocked
)

// @Summary     List all users
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /userApi/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// BlockUserHandler flips a user's blocked flag. The auth middleware
// re-fetches the user record per request, so the target loses access on
// their next call.
// @Summary     Block or unblock a user
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       username path string true "username"
// @Param       body body api.BlockUserRequest true "blocked flag"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /userApi/users/{username}/block [patch]
func BlockUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.Param("username")

		var req api.BlockUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getUserByUsername(c.Request().Context(), db, username); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if err := setUserBlocked(c.Request().Context(), db, username, bool(*req.Blocked)); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		msg := "User unblocked"
		if bool(*req.Blocked) {
			msg = "User blocked"
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msg})
	}
}
