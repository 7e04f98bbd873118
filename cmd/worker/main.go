// cmd/worker/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	infraCache "bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/pkg/container"
	"bookstore-storefront/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	// Initialize container
	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[Container] Failed to initialize: %v", err)
	}
	defer c.Cleanup()

	logger.Init("storefront-worker", c.Config.App.Environment, c.Config.App.LogLevel)

	// Load configuration
	cfg, err := loadConfig(c.Config)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	// Outcomes must land in the store the storefront reads
	if _, ok := c.Cache.(*infraCache.RedisCache); !ok {
		log.Fatalf("[Container] Redis session store unavailable, refusing to start")
	}

	// Initialize handlers
	handlers := initializeHandlers(c)

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// ✅ Perform health checks and log startup
	if err := startServices(cfg); err != nil {
		log.Fatalf("[Startup] Health check failed: %v", err)
	}

	// Wait for shutdown signal
	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	srv.Shutdown()
	log.Println("[Shutdown] ✓ Stopped")
}
