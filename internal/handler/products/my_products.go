package products

import (
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     List my products
// @Description Returns the caller's products, newest first.
// @Tags        products
// @Produce     json
// @Success     200 {array} api.ProductResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /productsApi/myProducts [get]
func MyProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		products, err := listProductsBySeller(c.Request().Context(), db, user.Username)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, api.NewProductResponse(&products[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
