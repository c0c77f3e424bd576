// Package config provides CLI commands for managing pitwall configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	appconfig "github.com/Iron-Ham/pitwall/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify pitwall configuration",
	Long: `View or modify pitwall configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  pitwall config set source.kind http
  pitwall config set source.base_url http://localhost:8080
  pitwall config set tui.theme nord

Valid keys:
  source.kind                 - Data source: simulated, file, http
  source.fixture_file         - Fixture file read by the file source
  source.base_url             - Data API base URL used by the http source
  source.request_timeout_ms   - HTTP request timeout in milliseconds
  source.aerodynamic_delay_ms - Simulated aerodynamic latency in milliseconds
  source.telemetry_delay_ms   - Simulated telemetry latency in milliseconds
  tui.theme                   - Color theme: default, nord, dracula, monokai
  tui.chart_height            - Performance chart height in rows
  server.addr                 - Data API listen address
  server.shutdown_timeout_ms  - Graceful shutdown bound in milliseconds
  logging.enabled             - Enable logging (true/false)
  logging.level               - Log level: debug, info, warn, error
  logging.dir                 - Directory holding pitwall.log`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/pitwall/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  pitwall config reset              # Reset all to defaults
  pitwall config reset tui.theme    # Reset only tui.theme to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind describes how a settable key's value is parsed and validated.
type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
	kindChoice
)

type settableKey struct {
	kind    keyKind
	choices func() []string
}

var settableKeys = map[string]settableKey{
	"source.kind":                 {kind: kindChoice, choices: appconfig.ValidSourceKinds},
	"source.fixture_file":         {kind: kindString},
	"source.base_url":             {kind: kindString},
	"source.request_timeout_ms":   {kind: kindInt},
	"source.aerodynamic_delay_ms": {kind: kindInt},
	"source.telemetry_delay_ms":   {kind: kindInt},
	"tui.theme":                   {kind: kindChoice, choices: appconfig.ValidThemes},
	"tui.chart_height":            {kind: kindInt},
	"server.addr":                 {kind: kindString},
	"server.shutdown_timeout_ms":  {kind: kindInt},
	"logging.enabled":             {kind: kindBool},
	"logging.level":               {kind: kindChoice, choices: appconfig.ValidLogLevels},
	"logging.dir":                 {kind: kindString},
}

// defaultValues maps every settable key to its default.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"source.kind":                 d.Source.Kind,
		"source.fixture_file":         d.Source.FixtureFile,
		"source.base_url":             d.Source.BaseURL,
		"source.request_timeout_ms":   d.Source.RequestTimeoutMs,
		"source.aerodynamic_delay_ms": d.Source.AerodynamicDelayMs,
		"source.telemetry_delay_ms":   d.Source.TelemetryDelayMs,
		"tui.theme":                   d.TUI.Theme,
		"tui.chart_height":            d.TUI.ChartHeight,
		"server.addr":                 d.Server.Addr,
		"server.shutdown_timeout_ms":  d.Server.ShutdownTimeoutMs,
		"logging.enabled":             d.Logging.Enabled,
		"logging.level":               d.Logging.Level,
		"logging.dir":                 d.Logging.Dir,
	}
}

// parseValue validates value for key and converts it to the stored type.
func parseValue(key, value string) (any, error) {
	sk, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'pitwall config set --help' to see valid keys", key)
	}

	switch sk.kind {
	case kindChoice:
		choices := sk.choices()
		if !slices.Contains(choices, value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(choices, ", "))
		}
		return value, nil
	case kindBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case kindInt:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	default:
		return value, nil
	}
}

// effectiveSettings returns the configuration as nested maps, ready to be
// written as YAML.
func effectiveSettings() map[string]any {
	cfg := appconfig.Get()
	return map[string]any{
		"source": map[string]any{
			"kind":                 cfg.Source.Kind,
			"fixture_file":         cfg.Source.FixtureFile,
			"base_url":             cfg.Source.BaseURL,
			"request_timeout_ms":   cfg.Source.RequestTimeoutMs,
			"aerodynamic_delay_ms": cfg.Source.AerodynamicDelayMs,
			"telemetry_delay_ms":   cfg.Source.TelemetryDelayMs,
		},
		"tui": map[string]any{
			"theme":        cfg.TUI.Theme,
			"chart_height": cfg.TUI.ChartHeight,
		},
		"server": map[string]any{
			"addr":                cfg.Server.Addr,
			"allowed_origins":     cfg.Server.AllowedOrigins,
			"shutdown_timeout_ms": cfg.Server.ShutdownTimeoutMs,
		},
		"logging": map[string]any{
			"enabled": cfg.Logging.Enabled,
			"level":   cfg.Logging.Level,
			"dir":     cfg.Logging.Dir,
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(effectiveSettings())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// initTemplate is the commented config written by 'config init'.
const initTemplate = `# Pitwall Configuration

# Data source behind the dashboard
source:
  # simulated, file or http
  kind: simulated
  # YAML or JSON snapshot read by the file source
  fixture_file: ""
  # Data API root used by the http source, e.g. http://localhost:8080
  base_url: ""
  # Bound on a single HTTP request in milliseconds
  request_timeout_ms: 5000
  # Simulated latencies in milliseconds
  aerodynamic_delay_ms: 1500
  telemetry_delay_ms: 1000

# Dashboard settings
tui:
  # Options: default, nord, dracula, monokai
  theme: default
  # Rows used by the performance chart
  chart_height: 10

# Data API server ('pitwall serve')
server:
  addr: ":8080"
  # CORS origins; "*" allows any
  allowed_origins:
    - "*"
  shutdown_timeout_ms: 5000

# Logging
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Directory holding pitwall.log. Empty logs to stderr, except the
  # dashboard which then does not log at all.
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'pitwall config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(initTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize pitwall's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/pitwall/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: PITWALL_* (e.g., PITWALL_SOURCE_BASE_URL)")

	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	defaults := defaultValues()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'pitwall config set --help' to see valid keys", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}
