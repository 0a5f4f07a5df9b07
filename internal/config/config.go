package config

import (
	"os"
	"strconv"
	"time"

	"fintrack/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	AppEnv      string
	DatabaseURL string

	// Redis backing for the rate limiter
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// API rate limiting
	RateLimit  int
	RateWindow time.Duration

	// Keep-alive self ping (production only)
	EnableKeepAlive   bool
	KeepAliveURL      string
	KeepAliveInterval time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, falling back to a local
// .env file for development.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	rateLimit := 100 // requests per window
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	rateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateWindow = time.Duration(n) * time.Second
		}
	}

	keepAliveInterval := 5 * time.Minute
	if v := os.Getenv("KEEP_ALIVE_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			keepAliveInterval = time.Duration(n) * time.Second
		}
	}

	keepAliveURL := os.Getenv("API_URL")
	if keepAliveURL == "" {
		keepAliveURL = "http://localhost:" + port + "/api/health"
	}

	return &Config{
		AppPort:           port,
		AppEnv:            appEnv,
		DatabaseURL:       dbURL,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		RateLimit:         rateLimit,
		RateWindow:        rateWindow,
		EnableKeepAlive:   appEnv == "production",
		KeepAliveURL:      keepAliveURL,
		KeepAliveInterval: keepAliveInterval,
		LogLevel:          getEnvDefault("LOG_LEVEL", "info"),
		LogJSON:           os.Getenv("LOG_JSON") == "true",
	}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
