package main

import (
	"fmt"

	"moneytracker/internal/config"
	"moneytracker/internal/database"
	"moneytracker/internal/logger"
	"moneytracker/internal/server"
)

// @title           Money Tracker API
// @version         1.0
// @description     Personal income and expense tracking API with totals, category breakdowns and dated history.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared API key, required only when the server sets API_KEY.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration before the logger so ENV and LOG_LEVEL apply
	appConfig, err := config.Load()
	if err != nil {
		logger.Init("development", "")
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if !appConfig.EnvFileLoaded {
		log.Debug("no .env file found, using process environment")
	}
	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set, the API is open to any caller")
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	router := server.NewRouter(appConfig, dbManager.DB())

	log.Infow("Starting Money Tracker API",
		"port", appConfig.Port,
		"env", appConfig.Env,
		"timezone", appConfig.Location.String(),
		"locale", appConfig.Locale.String(),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
