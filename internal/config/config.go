package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ storefront configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
	Payment PaymentConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// BackendConfig describes the bookstore REST API the storefront talks to
type BackendConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64 // outbound requests per second, 0 = unlimited
	RateBurst  int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool // false → in-memory session store
}

type SessionConfig struct {
	CookieName   string
	CookieDomain string
	CookieSecure bool
	MaxAge       int // seconds
	TTL          time.Duration
}

// PaymentConfig drives the payment-return reconciliation loop
type PaymentConfig struct {
	PollInterval  time.Duration
	PollTimeout   time.Duration
	RecheckDelay  time.Duration // asynq settle check after a soft timeout
	RecheckMaxTry int
}

type JWTConfig struct {
	// Secret is optional: when empty tokens are only inspected for expiry,
	// signature verification stays with the backend.
	Secret string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Storefront"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Backend: BackendConfig{
			BaseURL:    getEnv("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout:    getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),
			RatePerSec: getEnvFloat("BACKEND_RATE_PER_SEC", 20),
			RateBurst:  getEnvInt("BACKEND_RATE_BURST", 40),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "session_id"),
			CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
			MaxAge:       getEnvInt("SESSION_MAX_AGE", 60*60*24*30), // 30 days
			TTL:          getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		},
		Payment: PaymentConfig{
			PollInterval:  getEnvDuration("PAYMENT_POLL_INTERVAL", 3*time.Second),
			PollTimeout:   getEnvDuration("PAYMENT_POLL_TIMEOUT", 60*time.Second),
			RecheckDelay:  getEnvDuration("PAYMENT_RECHECK_DELAY", 2*time.Minute),
			RecheckMaxTry: getEnvInt("PAYMENT_RECHECK_MAX_RETRY", 10),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be set")
	}
	if c.Payment.PollInterval <= 0 {
		return fmt.Errorf("PAYMENT_POLL_INTERVAL must be positive")
	}
	if c.Payment.PollTimeout < c.Payment.PollInterval {
		return fmt.Errorf("PAYMENT_POLL_TIMEOUT must be >= PAYMENT_POLL_INTERVAL")
	}

	if c.App.Environment == "production" {
		if !c.Session.CookieSecure {
			return fmt.Errorf("SESSION_COOKIE_SECURE must be true in production")
		}
		if !c.Redis.Enabled {
			fmt.Println("WARNING: Redis disabled - sessions are lost on restart and the worker cannot read them")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration accepts Go duration strings ("3s", "1m")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
