package main

import (
	"net/http"
	"os"

	"delivery-api/cache"
	"delivery-api/config"
	"delivery-api/handlers"
	"delivery-api/routes"
	"delivery-api/services"
	"delivery-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.Load(log)
	config.InitDB(log)

	// Wire the core: one store, one cache, services on top
	st := store.NewGormStore(config.DB)
	cacheLayer := cache.NewMemoryLayer()
	guard := services.NewGuard(st)
	pricer := services.NewPricer(guard)
	catalogSvc := services.NewCatalog(st, cacheLayer, log)
	orderSvc := services.NewOrders(st, guard, pricer, log)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Delivery Order & Catalog API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r,
		handlers.NewAuthHandler(config.DB),
		handlers.NewCatalogHandler(catalogSvc),
		handlers.NewOrderHandler(orderSvc),
	)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
