// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/logger"
)

// Built-in defaults, applied by Defaults.
const (
	DefaultAPIURL        = "http://localhost:8000"
	DefaultUploadTimeout = 120 * time.Second
	DefaultFormat        = "json"
	DefaultConcurrency   = 4
	DefaultPort          = 8080
	DefaultSessionTTL    = time.Hour
	DefaultPrintTimeout  = 5 * time.Minute
	DefaultUploadsPerMin = 30
)

// Config is the file-backed configuration. YAML is the native format; since
// JSON is valid YAML, JSON config files load too. All fields are optional.
type Config struct {
	// Extraction service
	APIURL        string        `yaml:"api_url,omitempty" json:"api_url,omitempty" validate:"omitempty,url"`
	UploadTimeout time.Duration `yaml:"upload_timeout,omitempty" json:"upload_timeout,omitempty" validate:"gte=0"`

	// Export
	Format       string        `yaml:"format,omitempty" json:"format,omitempty" validate:"omitempty,oneof=json text txt print pdf html"`
	OutputDir    string        `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	Concurrency  int           `yaml:"concurrency,omitempty" json:"concurrency,omitempty" validate:"gte=0,lte=32"`
	ChromePath   string        `yaml:"chrome_path,omitempty" json:"chrome_path,omitempty"`
	PrintTimeout time.Duration `yaml:"print_timeout,omitempty" json:"print_timeout,omitempty" validate:"gte=0"`

	// Server
	Port       int           `yaml:"port,omitempty" json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RedisURL   string        `yaml:"redis_url,omitempty" json:"redis_url,omitempty" validate:"omitempty,url"`
	SessionTTL time.Duration `yaml:"session_ttl,omitempty" json:"session_ttl,omitempty" validate:"gte=0"`

	// UploadsPerMinute caps uploads per client IP.
	UploadsPerMinute int `yaml:"uploads_per_minute,omitempty" json:"uploads_per_minute,omitempty" validate:"gte=0"`

	// AllowedOrigin is the CORS origin of the web front end; empty allows any.
	AllowedOrigin string `yaml:"allowed_origin,omitempty" json:"allowed_origin,omitempty"`

	// Logging
	Log     logger.Config `yaml:"log,omitempty" json:"log,omitempty"`
	Verbose bool          `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIURL:           DefaultAPIURL,
		UploadTimeout:    DefaultUploadTimeout,
		Format:           DefaultFormat,
		Concurrency:      DefaultConcurrency,
		PrintTimeout:     DefaultPrintTimeout,
		Port:             DefaultPort,
		SessionTTL:       DefaultSessionTTL,
		UploadsPerMinute: DefaultUploadsPerMin,

		Log: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// LoadConfig loads configuration from a YAML or JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field ranges and formats, and that a configured Chrome
// binary exists.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	switch c.Log.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: log format must be json or pretty, got %q", c.Log.Format)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.AllowedOrigin == "" {
		result.AllowedOrigin = defaults.AllowedOrigin
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}
	if result.Log.TimeFormat == "" {
		result.Log.TimeFormat = defaults.Log.TimeFormat
	}

	// Numeric fields: use default if zero
	if result.UploadTimeout == 0 {
		result.UploadTimeout = defaults.UploadTimeout
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.PrintTimeout == 0 {
		result.PrintTimeout = defaults.PrintTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadsPerMinute == 0 {
		result.UploadsPerMinute = defaults.UploadsPerMinute
	}
	if result.SessionTTL == 0 {
		result.SessionTTL = defaults.SessionTTL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
