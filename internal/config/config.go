// Package config loads the application configuration. Settings come
// from an optional YAML file selected by CONFIG_FILE, with environment
// variables overriding individual values on top of it.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pandamarket/internal/common/pagination"
	pkgconfig "pandamarket/pkg/config"
)

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Pagination PaginationConfig `yaml:"pagination"`
	Upload     UploadConfig     `yaml:"upload"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// PaginationConfig holds the per-resource pagination bounds.
type PaginationConfig struct {
	Products pagination.Config       `yaml:"products"`
	Articles pagination.Config       `yaml:"articles"`
	Comments pagination.CursorConfig `yaml:"comments"`
}

// UploadConfig holds image upload settings.
type UploadConfig struct {
	Dir      string `yaml:"dir"`
	MaxBytes int64  `yaml:"max_bytes"`
}

// RateLimitConfig holds the per-client rate limit settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	IdleEviction      time.Duration `yaml:"idle_eviction"`
}

// Default returns the configuration used when no file and no overrides
// are present. The product listing clamps at 50 per page, the article
// listing at 100, matching the catalog and board page sizes.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20, // 1MB for JSON bodies; uploads carry their own cap
		},
		Pagination: PaginationConfig{
			Products: pagination.Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 50},
			Articles: pagination.Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 100},
			Comments: pagination.DefaultCursorConfig(),
		},
		Upload: UploadConfig{
			Dir:      "uploads",
			MaxBytes: 5 << 20,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
			IdleEviction:      30 * time.Minute,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE (when set), then environment variable overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Server.Addr = pkgconfig.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = pkgconfig.GetEnvDuration("SERVER_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = pkgconfig.GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Upload.Dir = pkgconfig.GetEnvString("UPLOAD_DIR", c.Upload.Dir)
	c.Upload.MaxBytes = int64(pkgconfig.GetEnvInt("UPLOAD_MAX_BYTES", int(c.Upload.MaxBytes)))

	c.RateLimit.Enabled = pkgconfig.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RequestsPerSecond = float64(pkgconfig.GetEnvInt("RATELIMIT_RPS", int(c.RateLimit.RequestsPerSecond)))
	c.RateLimit.Burst = pkgconfig.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr must not be empty")
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Server.RequestTimeout); err != nil {
		return fmt.Errorf("config: server.request_timeout: %w", err)
	}
	if err := pkgconfig.ValidateDurationRange(c.Server.ShutdownTimeout, time.Second, 5*time.Minute); err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("config: upload.max_bytes must be positive, got %d", c.Upload.MaxBytes)
	}

	for _, p := range []struct {
		name string
		cfg  pagination.Config
	}{
		{"products", c.Pagination.Products},
		{"articles", c.Pagination.Articles},
	} {
		if p.cfg.DefaultLimit < 1 || p.cfg.MaxLimit < p.cfg.DefaultLimit {
			return fmt.Errorf("config: pagination.%s: default_limit %d and max_limit %d are inconsistent",
				p.name, p.cfg.DefaultLimit, p.cfg.MaxLimit)
		}
	}
	if c.Pagination.Comments.DefaultLimit < 1 || c.Pagination.Comments.MaxLimit < c.Pagination.Comments.DefaultLimit {
		return fmt.Errorf("config: pagination.comments: default_limit %d and max_limit %d are inconsistent",
			c.Pagination.Comments.DefaultLimit, c.Pagination.Comments.MaxLimit)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("config: rate_limit: rps %v and burst %d are inconsistent",
			c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}
