// Package config loads the page server configuration: built-in defaults, an
// optional YAML file, a .env file, then the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all page server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Lists   ListsConfig   `yaml:"lists"`
	Payment PaymentConfig `yaml:"payment"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener and page sessions.
type ServerConfig struct {
	Port       string `yaml:"port"`
	SessionTTL string `yaml:"session_ttl"`
}

// BackendConfig points at the auction backend.
type BackendConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// ListsConfig configures the favorites and price alert fetches.
type ListsConfig struct {
	Timeout string `yaml:"timeout"`
}

// PaymentConfig selects the payment gateway.
type PaymentConfig struct {
	PG        string `yaml:"pg"`
	PayMethod string `yaml:"pay_method"`
}

// LoggingConfig sets the logrus level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "8080",
			SessionTTL: "30m",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:8081",
			Timeout: "30s",
		},
		Lists: ListsConfig{
			Timeout: "15s",
		},
		Payment: PaymentConfig{
			PG:        "html5_inicis",
			PayMethod: "card",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path (a missing file means defaults), then envFile (".env" when
// empty, ignored if absent), then the environment.
func Load(path, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the environment
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		c.Server.SessionTTL = v
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		c.Backend.Timeout = v
	}
	if v := os.Getenv("LIST_TIMEOUT"); v != "" {
		c.Lists.Timeout = v
	}
	if v := os.Getenv("PAYMENT_PG"); v != "" {
		c.Payment.PG = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend url %q must be absolute", c.Backend.URL)
	}
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	return nil
}

// Addr is the listen address, ":8080"
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// GetBackendTimeout returns the backend timeout as a duration.
func (c *Config) GetBackendTimeout() time.Duration {
	return parseDuration(c.Backend.Timeout, 30*time.Second)
}

// GetListTimeout returns the list fetch timeout as a duration.
func (c *Config) GetListTimeout() time.Duration {
	return parseDuration(c.Lists.Timeout, 15*time.Second)
}

// GetSessionTTL returns how long an idle page session is kept.
func (c *Config) GetSessionTTL() time.Duration {
	return parseDuration(c.Server.SessionTTL, 30*time.Minute)
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
