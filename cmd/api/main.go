package main

// @title Wander Website API
// @version 1.0.0
// @description Маркетинговый сайт приложения Wander и админка каталога мест.
// @description
// @description Админские эндпоинты находятся под /admin и защищены HTTP basic
// @description auth, когда в окружении заданы ADMIN_USERNAME и ADMIN_PASSWORD.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/travelguide-web/docs"
	"github.com/travelguide-web/internal/config"
	httpDelivery "github.com/travelguide-web/internal/delivery/http"
	"github.com/travelguide-web/internal/delivery/http/handler"
	"github.com/travelguide-web/internal/domain/repository"
	"github.com/travelguide-web/internal/pkg/logger"
	"github.com/travelguide-web/internal/repository/cache"
	"github.com/travelguide-web/internal/repository/postgres"
	"github.com/travelguide-web/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Wander website")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("admin_auth", cfg.AuthEnabled()),
	)

	if !cfg.AuthEnabled() {
		log.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, admin area is open")
	}

	// 3. Store handle. The pool opens lazily on first use; a missing
	// DATABASE_URL keeps the site up with the admin in degraded mode.
	dbHandle := postgres.NewHandle(cfg, log)
	defer func() {
		if err := dbHandle.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, places admin will run degraded")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := dbHandle.Health(ctx); err != nil {
			log.Warn("PostgreSQL health check failed", zap.Error(err))
		} else {
			log.Info("PostgreSQL connected")
		}
		cancel()
	}

	// 4. Redis is optional; without it the admin list is simply uncached.
	var cacheRepo repository.CacheRepository
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedis(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		log.Info("REDIS_HOST not set, running without places cache")
	}

	// 5. Initialize repositories and use cases
	placeRepo := postgres.NewPlaceRepository(dbHandle, log)
	placeUC := usecase.NewPlaceUseCase(placeRepo, cacheRepo, log, cfg.Cache.PlacesTTL)

	// 6. Initialize HTTP handlers
	pagesHandler, err := handler.NewPagesHandler(placeUC, log)
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	placeHandler := handler.NewPlaceHandler(placeUC, log)

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, pagesHandler, placeHandler)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
