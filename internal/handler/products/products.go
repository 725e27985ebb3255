// Package products implements the seller-scoped product CRUD. Every
// read, update and delete resolves the record first and verifies the
// caller is its seller before acting.
package products

import (
	"github.com/askarthikey/sellerPro/internal/middleware"
	"github.com/askarthikey/sellerPro/internal/model"
	"github.com/askarthikey/sellerPro/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createProduct        = store.CreateProduct
	listProductsBySeller = store.ListProductsBySeller
	getProductByID       = store.GetProductByID
	updateProduct        = store.UpdateProduct
	deleteProduct        = store.DeleteProduct
)

// currentUser returns the account RequireAuth attached to the context.
func currentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(middleware.ContextUserKey).(*model.User)
	return user, ok
}
