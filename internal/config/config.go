package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	StoreDriver     string
	DBPath          string
	RedisAddr       string
	RedisPrefix     string
	Namespace       string
	JWTSecret       string
	JWTIssuer       string
	JWTAudience     string
	ToastDismiss    time.Duration
	CacheTTL        time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads the environment, after loading a .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8008"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
		DBPath:          getEnv("DB_PATH", "daily-planner.db"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:     getEnv("REDIS_PREFIX", ""),
		Namespace:       getEnv("APP_NAMESPACE", "ai-smart-daily-planner"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTIssuer:       getEnv("JWT_ISSUER", ""),
		JWTAudience:     getEnv("JWT_AUDIENCE", ""),
		ToastDismiss:    time.Duration(getEnvAsInt("TOAST_DISMISS_MS", 2600)) * time.Millisecond,
		CacheTTL:        time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.ServerPort, ":")
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
