package products

import (
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"

	"github.com/labstack/echo/v4"
)

// @Summary     Add a product
// @Description Persists a product owned by the caller. Price and stock accept JSON numbers or numeric strings.
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body api.CreateProductRequest true "product data"
// @Success     201 {object} api.AddProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /productsApi/addProduct [post]
func AddProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			ProductName: req.ProductName,
			Price:       float64(req.Price),
			Category:    req.Category,
			Stock:       int(*req.Stock),
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Seller:      user.Username,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.AddProductResponse{
			Message:   "Product added successfully",
			ProductID: product.ID.String(),
		})
	}
}
