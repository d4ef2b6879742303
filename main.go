package main

import (
	"net/http"
	"os"

	"coffee-shop-api/config"
	"coffee-shop-api/middleware"
	"coffee-shop-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.Load()
	defer config.Log.Sync()

	// Set Gin mode
	if mode := os.Getenv("GIN_MODE"); mode == "" && config.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database and seed the admin account if configured
	config.InitDB()
	config.EnsureAdmin()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS for the storefront frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Kopi Cerita Storefront API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	config.Log.Info("Starting server", zap.String("port", config.App.Port))
	if err := r.Run(config.App.Port); err != nil {
		config.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
