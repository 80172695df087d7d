// Command seed replaces the product catalog with the starter collection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kariqs/woven-magic-api/cache"
	"github.com/Kariqs/woven-magic-api/initializers"
	"github.com/Kariqs/woven-magic-api/store"
)

func main() {
	initializers.LoadEnv()

	cfg, err := initializers.LoadConfig()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := initializers.SetupLogger(cfg)
	ctx := context.Background()

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer initializers.CloseDB(db)

	if err := initializers.SyncDatabase(db); err != nil {
		logger.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	products := initializers.SeedProducts()
	deleted, err := store.New(db).ReplaceProducts(ctx, products)
	if err != nil {
		logger.Error("Seeding products failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Cleared existing products", "deleted", deleted)
	for i, p := range products {
		logger.Info("Seeded product", "n", i+1, "name", p.Name, "price", p.Price.String(), "category", p.Category)
	}

	rdb, err := initializers.ConnectToRedis(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, product cache not flushed", "error", err)
		return
	}
	if rdb == nil {
		return
	}
	defer rdb.Close()
	if err := cache.New(rdb, cache.DefaultPrefix, cfg.CacheTTL).DeletePattern(ctx, "products:*"); err != nil {
		logger.Warn("Could not flush product cache", "error", err)
	}
}
