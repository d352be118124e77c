package config

import (
	"os"
	"strconv"
	"time"
)

// Store backend selectors for STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type HTTP struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Log struct {
	Level      string
	JSON       bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type StoreConfig struct {
	Backend     string
	DataDir     string
	RedisAddr   string
	RedisPrefix string
	PostgresDSN string
}

type Config struct {
	HTTP  HTTP
	Log   Log
	Store StoreConfig
}

// Load reads configuration from the environment. Every value has a default
// so a bare process comes up with the file backend under ./data on port 3000.
func Load() *Config {
	return &Config{
		HTTP: HTTP{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Log: Log{
			Level:      getEnv("LOG_LEVEL", "info"),
			JSON:       getBool("LOG_JSON", false),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 28),
		},
		Store: StoreConfig{
			Backend:     getEnv("STORE_BACKEND", BackendFile),
			DataDir:     getEnv("DATA_DIR", "data"),
			RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPrefix: getEnv("REDIS_PREFIX", "esyleave"),
			PostgresDSN: os.Getenv("POSTGRES_DSN"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
