package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	RateLimitRPS int
}

type FeedConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
	RecencyCap  int // strongest-N cap for recency windows
	SearchCap   int // feed pull size for client-side place matching
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 5),
		},
		Feed: FeedConfig{
			BaseURL:     getEnv("FEED_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
			HTTPTimeout: getEnvDuration("FEED_HTTP_TIMEOUT", 15*time.Second),
			RecencyCap:  getEnvInt("FEED_RECENCY_LIMIT", 10),
			SearchCap:   getEnvInt("FEED_SEARCH_LIMIT", 1000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Feed.BaseURL == "" {
		return fmt.Errorf("feed URL must not be empty")
	}
	if c.Feed.HTTPTimeout < time.Second {
		return fmt.Errorf("feed HTTP timeout must be at least 1 second")
	}
	if c.Feed.RecencyCap < 1 || c.Feed.SearchCap < 1 {
		return fmt.Errorf("feed result limits must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
