package api

import (
	"transactions-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	// Initialize merchant registry
	middleware.InitMerchantRegistry()

	handler := NewTransactionHandler(DefaultFetcherFactory)

	// API route group
	api := r.Group("/api")
	{
		// Transaction routes (merchant resolution required)
		transactions := api.Group("/transactions")
		transactions.Use(middleware.MerchantMiddleware())
		{
			transactions.GET("", handler.GetTransactions)
			transactions.POST("/refresh", handler.RefreshTransactions)
		}

		// Merchant management routes (for admin use)
		admin := api.Group("/admin")
		{
			admin.GET("/merchants", GetMerchants)
			admin.POST("/merchants", CreateMerchant)
			admin.PUT("/merchants/:id", UpdateMerchant)
			admin.DELETE("/merchants/:id", DeleteMerchant)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "transactions-service",
		})
	})
}
