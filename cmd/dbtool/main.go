package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"route-evaluation-service/internal/adapters/cache"
	"route-evaluation-service/internal/config"
	"route-evaluation-service/internal/platform/db"
	"route-evaluation-service/internal/platform/logger"

	"go.uber.org/zap"
)

// dbtool prepares the Postgres geocode cache.
//
//	dbtool            create the schema
//	dbtool -purge     also delete entries older than GEOCODE_CACHE_TTL
func main() {
	purge := flag.Bool("purge", false, "delete cache entries older than GEOCODE_CACHE_TTL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel, "dbtool")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer sqlDB.Close()

	log.Info("initializing geocode cache schema...")
	if err := cache.InitSchema(ctx, sqlDB); err != nil {
		log.Fatal("schema initialization failed", zap.Error(err))
	}
	log.Info("schema ready")

	if !*purge {
		return
	}

	n, err := cache.PurgeOlderThan(ctx, sqlDB, cfg.GeocodeCacheTTL)
	if err != nil {
		log.Fatal("purge failed", zap.Error(err))
	}
	log.Info("purge complete", zap.Int64("deleted", n), zap.Duration("max_age", cfg.GeocodeCacheTTL))
}
