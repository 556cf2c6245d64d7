package routes

import (
	"delivery-api/handlers"
	"delivery-api/middleware"
	"delivery-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, auth *handlers.AuthHandler, catalog *handlers.CatalogHandler, orders *handlers.OrderHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)

		// Catalog reads (no auth needed, cached)
		public.GET("/restaurants", catalog.ListRestaurants)
		public.GET("/restaurants/:id", catalog.GetRestaurant)
		public.GET("/restaurants/:id/products", catalog.GetMenu)

		public.GET("/state-machine", orders.GetStateMachineInfo)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/customers", catalog.RegisterCustomer)
		customer.GET("/customers/:id", catalog.GetCustomer)
		customer.DELETE("/customers/:id", catalog.DeactivateCustomer)
		customer.GET("/customers/:id/orders", orders.ListCustomerOrders)

		customer.POST("/orders", orders.PlaceOrder)
		customer.GET("/orders/:id", orders.GetOrder)
		customer.PUT("/orders/:id/cancel", orders.CancelOrder)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.POST("/restaurants", catalog.RegisterRestaurant)
		restaurant.PUT("/restaurants/:id", catalog.UpdateRestaurant)
		restaurant.PATCH("/restaurants/:id/active", catalog.SetRestaurantActive)

		restaurant.POST("/restaurants/:id/products", catalog.AddProduct)
		restaurant.PUT("/products/:productId", catalog.UpdateProduct)
		restaurant.PATCH("/products/:productId/available", catalog.SetProductAvailable)

		restaurant.GET("/orders", orders.ListOrdersByStatus)
		restaurant.PUT("/orders/:id/status", orders.UpdateOrderStatus)
	}
}
