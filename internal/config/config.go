package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/verdana-ai/verdana-web/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "verdana.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout is how long graceful shutdown waits for
	// in-flight requests.
	DefaultShutdownTimeout = "10s"

	// DefaultDispatchQueueSize is the per-session event queue depth.
	DefaultDispatchQueueSize = 64
)

// Config represents the complete verdana.json configuration.
type Config struct {
	// Name is the site name used in logs.
	Name string `json:"name,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ShutdownTimeout is the graceful shutdown window (e.g. "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// DispatchQueueSize is the per-session live event queue depth.
	DispatchQueueSize int `json:"dispatchQueueSize,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Name:              "verdana-web",
		Host:              DefaultHost,
		Port:              DefaultPort,
		ShutdownTimeout:   DefaultShutdownTimeout,
		DispatchQueueSize: DefaultDispatchQueueSize,
		LogLevel:          "info",
	}
}

// Load reads the configuration from path, falling back to defaults when
// the file does not exist. Environment variables VERDANA_HOST, VERDANA_PORT,
// and VERDANA_LOG_LEVEL override file values. An empty path means
// ConfigFileName in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Config file is optional.
	case err != nil:
		return nil, errors.Newf(errors.CategoryConfig, "reading %s", path).Wrap(err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Newf(errors.CategoryConfig, "parsing %s", path).
				Wrap(err).
				WithSuggestion("check the file for JSON syntax errors")
		}
		cfg.configPath = path
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if host := os.Getenv("VERDANA_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("VERDANA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if level := os.Getenv("VERDANA_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Newf(errors.CategoryConfig, "invalid port %d", c.Port).
			WithSuggestion("set port to a value between 1 and 65535")
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return errors.Newf(errors.CategoryConfig, "invalid shutdownTimeout %q", c.ShutdownTimeout).
			Wrap(err).
			WithSuggestion(`use a Go duration string such as "10s"`)
	}
	if c.DispatchQueueSize < 1 {
		return errors.Newf(errors.CategoryConfig, "invalid dispatchQueueSize %d", c.DispatchQueueSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf(errors.CategoryConfig, "invalid logLevel %q", c.LogLevel).
			WithSuggestion("use one of debug, info, warn, error")
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ShutdownGrace returns ShutdownTimeout as a duration. Validated at load
// time, so parse failures fall back to the default.
func (c *Config) ShutdownGrace() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns where the config was loaded from, or "" for pure defaults.
func (c *Config) Path() string {
	return c.configPath
}
