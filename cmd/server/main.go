package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-selection/internal/config"
	"github.com/iliyamo/venue-seat-selection/internal/database"
	"github.com/iliyamo/venue-seat-selection/internal/handler"
	"github.com/iliyamo/venue-seat-selection/internal/middleware"
	"github.com/iliyamo/venue-seat-selection/internal/repository"
	"github.com/iliyamo/venue-seat-selection/internal/router"
	"github.com/iliyamo/venue-seat-selection/internal/selection"
	"github.com/iliyamo/venue-seat-selection/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	venueRepo := repository.NewVenueRepo(db)

	// Redis is optional: without it the selection lives in memory only
	// and the venue cache is disabled.
	rdb := config.NewRedisClient()
	var kv storage.KVStore
	if rdb != nil {
		kv = storage.NewRedisKVStore(rdb)
	} else {
		log.Printf("redis unavailable: selection persistence and venue cache disabled")
	}

	ctx := context.Background()
	store := selection.NewStore(ctx, kv, cfg.SelectionKey)

	cacheCfg := config.LoadCacheConfig()
	venues := handler.NewVenueHandler(venueRepo, cfg.VenueID)
	venues.AfterReload = func(ctx context.Context) {
		middleware.InvalidateCache(ctx, cacheCfg, rdb)
	}
	if err := venues.Load(ctx); err != nil {
		log.Fatalf("load venue %s: %v", cfg.VenueID, err)
	}
	finder := handler.NewFinderHandler(venues)
	sel := handler.NewSelectionHandler(store, venues, cfg.PublishEvents)

	e := echo.New()
	cache := middleware.VenueCache(cacheCfg, rdb)
	router.RegisterRoutes(e, venues, finder, sel, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s venue=%s)", addr, cfg.Env, cfg.VenueID)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
