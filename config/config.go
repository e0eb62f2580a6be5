package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
	Cache     CacheConfig     `toml:"cache" yaml:"cache"`
	History   HistoryConfig   `toml:"history" yaml:"history"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Capacity int      `toml:"capacity" yaml:"capacity"`
	Window   Duration `toml:"window" yaml:"window"`
}

// CacheConfig selects where parsed commands are cached
type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"` // "memory" or "redis"
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

// HistoryConfig bounds the in-memory quote history
type HistoryConfig struct {
	Size int `toml:"size" yaml:"size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Duration is a wrapper for time.Duration that supports TOML and YAML
// unmarshaling from strings such as "15s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		RateLimit: RateLimitConfig{
			Capacity: 5,
			Window:   Duration{time.Minute},
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			TTL:       Duration{time.Hour},
		},
		History: HistoryConfig{
			Size: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML or YAML file (chosen by extension) on top of the
// defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window.Duration <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.History.Size <= 0 {
		return fmt.Errorf("history.size must be positive, got %d", c.History.Size)
	}
	return nil
}
