package main

import (
	"context"
	"log"
	"time"

	"movie-review/cmd"
	"movie-review/internal/data/repository"
	"movie-review/internal/omdb"
	"movie-review/internal/wire"
	"movie-review/pkg/database"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.RunMigrations(ctx, db, database.Migrations(), logger); err != nil {
		cancel()
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	if err := repos.Session.CleanExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to clean expired sessions", zap.Error(err))
	}
	cancel()

	tokens := token.NewManager(config.JWT.Secret, config.App.Name, config.JWT.AccessTTL, config.JWT.RefreshTTL)

	if config.OMDb.APIKey == "" {
		logger.Warn("OMDB_API_KEY is not set, movie metadata will be empty")
	}
	metadata := omdb.NewClient(config.OMDb, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, metadata, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
