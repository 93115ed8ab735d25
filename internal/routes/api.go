// Package routes wires the API handlers onto the echo router.
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/handler/api"
	"github.com/shoplite/shoplite/internal/middleware"
)

// APIDeps contains dependencies for the versioned API routes.
type APIDeps struct {
	Users      *api.UserHandler
	Categories *api.CategoryHandler
	Products   *api.ProductHandler
	Cart       *api.CartHandler
	Auth       echo.MiddlewareFunc
	Metrics    *middleware.Metrics
}

// RegisterAPIRoutes registers the /api/v1 surface. Reads on the catalog are
// public; everything touching a user's own data sits behind bearer auth.
func RegisterAPIRoutes(e *echo.Echo, deps APIDeps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))

	v1 := e.Group("/api/v1")

	v1.POST("/users/register", deps.Users.Register)
	v1.POST("/users/login", deps.Users.Login)
	v1.POST("/users/:id/confirm-email", deps.Users.ConfirmEmail)

	v1.GET("/categories", deps.Categories.List)
	v1.GET("/categories/:id", deps.Categories.Get)
	v1.POST("/categories", deps.Categories.Create, deps.Auth)

	v1.GET("/products", deps.Products.List)
	v1.GET("/products/:id", deps.Products.Detail)
	v1.POST("/products", deps.Products.Create, deps.Auth)
	v1.PUT("/products/:id", deps.Products.Edit, deps.Auth)
	v1.DELETE("/products/:id", deps.Products.Delete, deps.Auth)

	cart := v1.Group("/cart", deps.Auth)
	cart.GET("", deps.Cart.Details)
	cart.GET("/count", deps.Cart.ItemCount)
	cart.DELETE("", deps.Cart.Clear)
	cart.POST("/items", deps.Cart.AddItem)
	cart.PUT("/items/:productId", deps.Cart.UpdateItem)
	cart.DELETE("/items/:productId", deps.Cart.RemoveItem)
}
