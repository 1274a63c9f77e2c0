// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinema-catalog/cmd"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/wire"
	"cinema-catalog/pkg/database"
	"cinema-catalog/pkg/kvstore"
	"cinema-catalog/pkg/locale"
	"cinema-catalog/pkg/utils"

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
		zap.String("storage", config.Storage.Driver),
	)

	resolver, err := locale.NewResolver(config.Locale.Default, config.Locale.Supported)
	if err != nil {
		logger.Fatal("Failed to build locale resolver", zap.Error(err))
	}

	store, err := openStore(config)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	logger.Info("Storage ready", zap.String("driver", config.Storage.Driver))

	repos := repository.NewRepository(store, config.Storage.Namespace, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, resolver, config, logger)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go app.Clients.Sweep(sweepCtx, config.App.ClientTTL, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// openStore connects the key-value backend named by STORAGE_DRIVER.
func openStore(config *utils.Config) (kvstore.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch config.Storage.Driver {
	case "", "memory":
		return kvstore.NewMemoryStore(), nil

	case "redis":
		store, err := kvstore.DialRedis(ctx, config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		if err != nil {
			return nil, err
		}
		return store, nil

	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}
