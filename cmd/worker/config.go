package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"bookstore-storefront/internal/config"
)

// Config holds all configuration for the worker
type Config struct {
	Redis       config.RedisConfig
	Concurrency int
	HealthAddr  string
}

// loadConfig reuses the storefront config for Redis so both processes
// share the session store and the queue
func loadConfig(app *config.Config) (*Config, error) {
	if !app.Redis.Enabled {
		return nil, fmt.Errorf("REDIS_ENABLED must be true for the worker")
	}

	cfg := &Config{
		Redis:       app.Redis,
		Concurrency: 10,
		HealthAddr:  ":9999",
	}
	if v, err := strconv.Atoi(os.Getenv("WORKER_CONCURRENCY")); err == nil && v > 0 {
		cfg.Concurrency = v
	}
	if v := os.Getenv("WORKER_HEALTH_ADDR"); v != "" {
		cfg.HealthAddr = v
	}

	log.Printf("[Config] Redis: %s (db %d), concurrency: %d", cfg.Redis.Host, cfg.Redis.DB, cfg.Concurrency)
	return cfg, nil
}
