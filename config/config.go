package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	JWTSecret     string
	// Upstream commerce API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	// Catalog
	CatalogRefreshInterval time.Duration
	CatalogFetchLimit      int
	CacheCategoryTTL       time.Duration
	CacheProductTTL        time.Duration
	// Browsing
	PageSize int
	// Sessions
	SessionTTL           time.Duration
	SessionCleanupPeriod time.Duration
	// Business Rules
	MaxCartQuantity int
	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev)
		// In docker/prod envs .env might not exist and we rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		JWTSecret:     getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),

		UpstreamBaseURL: getEnv("UPSTREAM_API_URL", ""),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),

		// Catalog defaults: refresh every 10m, pull up to 500 products per refresh
		CatalogRefreshInterval: getDurationEnv("CATALOG_REFRESH_INTERVAL", 10*time.Minute),
		CatalogFetchLimit:      getIntEnv("CATALOG_FETCH_LIMIT", 500),
		CacheCategoryTTL:       getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),
		CacheProductTTL:        getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		PageSize: getIntEnv("PAGE_SIZE", 8),

		// Session defaults: 30m idle TTL, sweep every 5m
		SessionTTL:           getDurationEnv("SESSION_TTL", 30*time.Minute),
		SessionCleanupPeriod: getDurationEnv("SESSION_CLEANUP_PERIOD", 5*time.Minute),

		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),

		RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 100),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.UpstreamBaseURL == "" {
		log.Println("WARNING: UPSTREAM_API_URL not set. Serving the built-in fallback catalog only; login and server carts will be unavailable.")
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
	if c.PageSize <= 0 {
		log.Fatal("CRITICAL: PAGE_SIZE must be positive")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
