package auth

import (
	"net/http"
	"strings"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"

	"github.com/labstack/echo/v4"
)

// @Summary     Register a new seller account
// @Description Creates a user with a bcrypt-hashed password. Usernames are unique.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "account data"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /userApi/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getUserByUsername(c.Request().Context(), db, req.Username); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "User already exists!!"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: hash,
			IsBlocked:    bool(req.IsBlocked),
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	}
}
