// Package server wires services, handlers and middleware into the HTTP router.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"moneytracker/internal/categories"
	"moneytracker/internal/config"
	_ "moneytracker/internal/docs" // Register swagger docs
	"moneytracker/internal/handlers"
	"moneytracker/internal/middleware"
	"moneytracker/internal/services"
	"moneytracker/internal/validator"
)

// NewRouter builds the API router over db.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	validator.Register()

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	// Services
	transactionService := services.NewTransactionService(db)
	statsService := services.NewStatsService(transactionService, cfg.Locale)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, loc)
	statsHandler := handlers.NewStatsHandler(transactionService, statsService, loc)
	categoryHandler := handlers.NewCategoryHandler(categories.Default())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.NoRoute(middleware.NotFound())

	router.GET("/", handlers.Index)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", handlers.Health)

	api := router.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg.APIKey))

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/search", statsHandler.SearchTransactions)
	transactions.GET("/history", statsHandler.GetHistory)
	transactions.GET("/range/:startDate/:endDate", transactionHandler.GetTransactionsByRange)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Stats routes
	stats := api.Group("/stats")
	stats.GET("", statsHandler.GetStats)
	stats.GET("/month", statsHandler.GetMonthStats)
	stats.GET("/period/:period", statsHandler.GetPeriodStats)
	stats.GET("/categories", statsHandler.GetCategoryBreakdown)
	stats.GET("/monthly", statsHandler.GetMonthlySeries)
	stats.GET("/consistency", statsHandler.GetConsistency)

	// Category routes
	cats := api.Group("/categories")
	cats.GET("", categoryHandler.GetCategories)
	cats.GET("/:id", categoryHandler.GetCategoryByID)

	return router
}
