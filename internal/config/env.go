package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables that override file values.
const (
	EnvAPIURL     = "RESUME_PARSER_API_URL"
	EnvRedisURL   = "REDIS_URL"
	EnvChromePath = "CHROME_PATH"
	EnvPort       = "PORT"
	EnvSessionTTL = "RESUME_PARSER_SESSION_TTL"
	EnvLogLevel   = "RESUME_PARSER_LOG_LEVEL"
	EnvFrontend   = "FRONTEND_URL"
)

// ApplyEnv overwrites fields with any of the environment variables above that
// are set and non-empty.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvFrontend); v != "" {
		c.AllowedOrigin = v
	}

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a valid integer: %w", EnvPort, err)
		}
		c.Port = port
	}

	if v := os.Getenv(EnvSessionTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", EnvSessionTTL, err)
		}
		c.SessionTTL = ttl
	}

	return nil
}
