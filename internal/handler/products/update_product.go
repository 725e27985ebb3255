package products

import (
	"errors"
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateProductHandler merges the provided fields over the stored
// record; fields absent from the body keep their values.
// @Summary     Update a product by id
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id path string true "product id"
// @Param       body body api.UpdateProductRequest true "fields to update"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /productsApi/product/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if product.Seller != user.Username {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "You do not have access to this product"})
		}

		if req.ProductName != nil {
			product.ProductName = *req.ProductName
		}
		if req.Price != nil {
			product.Price = float64(*req.Price)
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Stock != nil {
			product.Stock = int(*req.Stock)
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}

		if err := updateProduct(c.Request().Context(), db, product); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewProductResponse(product))
	}
}
