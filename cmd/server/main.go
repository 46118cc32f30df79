package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/config"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/database"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/handler"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/middleware"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/router"
	publisher "github.com/dhilip1/sreeGuruLivingSpace/internal/service"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

func main() {
	cfg := config.Load()

	// Pick the storage backend. Both implement the same contract; the
	// memory store seeds at construction, the mysql store seeds lazily
	// on first catalog read.
	var store storage.Storage
	switch cfg.StorageBackend {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		mysqlStore := storage.NewMySQLStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mysqlStore.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("ensure schema: %v", err)
		}
		cancel()
		store = mysqlStore
	default:
		store = storage.NewMemoryStore()
	}

	// Redis is optional; a nil client turns the cache and the rate
	// limiter into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; catalog cache and rate limiting disabled")
	}
	cacheMW := middleware.NewCatalogCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	var publish func(context.Context, queue.SubmissionReceivedEvent) error
	if cfg.EventsEnabled {
		publish = publisher.PublishSubmissionReceived
		go queue.StartSubmissionConsumer()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Register(e, router.Deps{
		Catalog:   handler.NewCatalogHandler(store),
		Forms:     handler.NewFormsHandler(store, publish),
		Auth:      handler.NewAuthHandler(cfg, store),
		JWTSecret: cfg.JWTSecret,
		CacheMW:   cacheMW,
		LimitMW:   limitMW,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, storage=%s)", addr, cfg.Env, cfg.StorageBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
