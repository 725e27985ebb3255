package router

import (
	"github.com/askarthikey/sellerPro/internal/cache"
	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/handler"
	"github.com/askarthikey/sellerPro/internal/handler/auth"
	"github.com/askarthikey/sellerPro/internal/handler/products"
	"github.com/askarthikey/sellerPro/internal/handler/storage"
	"github.com/askarthikey/sellerPro/internal/handler/users"
	"github.com/askarthikey/sellerPro/internal/middleware"
	"github.com/askarthikey/sellerPro/internal/service"
	"github.com/askarthikey/sellerPro/internal/worker"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Route names mirror the original API so existing clients keep working.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, st *service.Storage) {
	requireAuth := middleware.RequireAuth(db)
	requireAdmin := middleware.RequireAdmin(db)

	// Brute-force guard on the credential endpoints.
	authLimiter := middleware.RateLimit(rate.NewLimiter(rate.Limit(5), 10))

	e.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	userAPI := e.Group("/userApi")
	userAPI.POST("/signup", auth.SignupHandler(db), authLimiter)
	userAPI.POST("/signin", auth.SigninHandler(db, rdb, wp), authLimiter)
	userAPI.POST("/refresh", auth.RefreshHandler(db, rdb))
	userAPI.GET("/users", users.ListUsersHandler(db), requireAdmin)
	userAPI.PATCH("/users/:username/block", users.BlockUserHandler(db), requireAdmin)

	productsAPI := e.Group("/productsApi", requireAuth)
	productsAPI.POST("/addProduct", products.AddProductHandler(db))
	productsAPI.GET("/myProducts", products.MyProductsHandler(db))
	productsAPI.GET("/product/:id", products.GetProductHandler(db))
	productsAPI.PUT("/product/:id", products.UpdateProductHandler(db))
	productsAPI.DELETE("/product/:id", products.DeleteProductHandler(db))

	storageAPI := e.Group("/storageApi", requireAuth)
	storageAPI.POST("/uploadUrl", storage.UploadURLHandler(st))
}
