package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete pitwall configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Source kinds
const (
	SourceSimulated = "simulated"
	SourceFile      = "file"
	SourceHTTP      = "http"
)

// SourceConfig selects and tunes the data source behind the dashboard
type SourceConfig struct {
	// Kind is the data source: "simulated", "file" or "http" (default: "simulated")
	Kind string `mapstructure:"kind"`
	// FixtureFile is the YAML or JSON snapshot read by the "file" source
	FixtureFile string `mapstructure:"fixture_file"`
	// BaseURL is the data API root used by the "http" source, e.g. http://localhost:8080
	BaseURL string `mapstructure:"base_url"`
	// RequestTimeoutMs bounds a single HTTP request (default: 5000)
	RequestTimeoutMs int `mapstructure:"request_timeout_ms"`
	// AerodynamicDelayMs is the simulated latency of the aerodynamic slice (default: 1500)
	AerodynamicDelayMs int `mapstructure:"aerodynamic_delay_ms"`
	// TelemetryDelayMs is the simulated latency of the telemetry slice (default: 1000)
	TelemetryDelayMs int `mapstructure:"telemetry_delay_ms"`
}

// TUIConfig controls the dashboard rendering
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "nord", "dracula", "monokai"
	Theme string `mapstructure:"theme"`
	// ChartHeight is the number of rows used by the performance chart (default: 10)
	ChartHeight int `mapstructure:"chart_height"`
}

// ServerConfig controls the data API server
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `mapstructure:"addr"`
	// AllowedOrigins lists CORS origins; "*" allows any (default: ["*"])
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// ShutdownTimeoutMs bounds graceful shutdown (default: 5000)
	ShutdownTimeoutMs int `mapstructure:"shutdown_timeout_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory holding pitwall.log. Empty means stderr for the
	// API server and no logging for the dashboard, which owns the terminal.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:               SourceSimulated,
			FixtureFile:        "",
			BaseURL:            "",
			RequestTimeoutMs:   5000,
			AerodynamicDelayMs: 1500,
			TelemetryDelayMs:   1000,
		},
		TUI: TUIConfig{
			Theme:       "default",
			ChartHeight: 10,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			AllowedOrigins:    []string{"*"},
			ShutdownTimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// RequestTimeout returns the HTTP request timeout as a time.Duration
func (c *SourceConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// AerodynamicDelay returns the simulated aerodynamic latency
func (c *SourceConfig) AerodynamicDelay() time.Duration {
	return time.Duration(c.AerodynamicDelayMs) * time.Millisecond
}

// TelemetryDelay returns the simulated telemetry latency
func (c *SourceConfig) TelemetryDelay() time.Duration {
	return time.Duration(c.TelemetryDelayMs) * time.Millisecond
}

// ShutdownTimeout returns the graceful shutdown bound as a time.Duration
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Source defaults
	viper.SetDefault("source.kind", defaults.Source.Kind)
	viper.SetDefault("source.fixture_file", defaults.Source.FixtureFile)
	viper.SetDefault("source.base_url", defaults.Source.BaseURL)
	viper.SetDefault("source.request_timeout_ms", defaults.Source.RequestTimeoutMs)
	viper.SetDefault("source.aerodynamic_delay_ms", defaults.Source.AerodynamicDelayMs)
	viper.SetDefault("source.telemetry_delay_ms", defaults.Source.TelemetryDelayMs)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.chart_height", defaults.TUI.ChartHeight)

	// Server defaults
	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	viper.SetDefault("server.shutdown_timeout_ms", defaults.Server.ShutdownTimeoutMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pitwall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pitwall"
	}
	return filepath.Join(home, ".config", "pitwall")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
