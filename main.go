// main.go
package main

import (
	"context"
	"log"

	"meem-backend/cmd"
	"meem-backend/internal/data/repository"
	"meem-backend/internal/wire"
	"meem-backend/pkg/cache"
	"meem-backend/pkg/database"
	"meem-backend/pkg/mailer"
	"meem-backend/pkg/storage"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Connect to object storage
	store, err := storage.NewMinioStore(context.Background(), config.Storage)
	if err != nil {
		logger.Fatal("Failed to connect to object storage", zap.Error(err))
	}

	logger.Info("Object storage connected successfully")

	// Initialize mailer dan cache
	mail := mailer.NewSMTPMailer(config.Email)
	pageCache := cache.New()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, store, mail, pageCache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
