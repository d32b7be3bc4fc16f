package main

import (
	"log"

	"band-booking/cmd"
	"band-booking/internal/data/repository"
	"band-booking/internal/wire"
	"band-booking/pkg/cache"
	"band-booking/pkg/database"
	"band-booking/pkg/queue"
	"band-booking/pkg/utils"

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

	// Catalog cache; nil client means caching is disabled, not fatal
	redisClient := cache.NewRedisClient(config.Redis, logger)
	cacheStore := cache.NewStore(redisClient, config.Redis.CacheTTL, logger)

	// Rental approval queue publisher
	publisher := queue.NewPublisher(config.Queue.URL, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, cacheStore, publisher, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
