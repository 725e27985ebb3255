package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"
	"github.com/askarthikey/sellerPro/internal/service"
	"github.com/askarthikey/sellerPro/internal/store"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ContextUserKey holds the *model.User resolved by RequireAuth.
const ContextUserKey = "user"

const blockedMessage = "Your account has been blocked. Please contact admin."

var getUserByUsername = store.GetUserByUsername

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No token provided, access denied")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth verifies the bearer token and re-fetches the user record
// on every request, so blocking or deleting an account takes effect on
// the next call rather than at token expiry.
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			user, err := getUserByUsername(c.Request().Context(), db, claims.Username)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "User not found")
			}
			if user.IsBlocked {
				return echo.NewHTTPError(http.StatusForbidden, blockedMessage)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin layers an admin check on RequireAuth.
func RequireAdmin(db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		})
	}
}

// RateLimit rejects requests beyond the bucket's rate with 429. Applied
// to the credential endpoints.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")
			}
			return next(c)
		}
	}
}
