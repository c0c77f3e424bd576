package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "source.kind")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidSourceKinds returns the list of valid source kinds
func ValidSourceKinds() []string {
	return []string{SourceSimulated, SourceFile, SourceHTTP}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid theme names.
// Must match styles.BuiltinThemes (kept separate to avoid an import cycle).
func ValidThemes() []string {
	return []string{"default", "nord", "dracula", "monokai"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSource()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSource() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidSourceKinds(), c.Source.Kind) {
		errors = append(errors, ValidationError{
			Field:   "source.kind",
			Value:   c.Source.Kind,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidSourceKinds(), ", ")),
		})
	}

	switch c.Source.Kind {
	case SourceFile:
		if strings.TrimSpace(c.Source.FixtureFile) == "" {
			errors = append(errors, ValidationError{
				Field:   "source.fixture_file",
				Value:   c.Source.FixtureFile,
				Message: "is required when source.kind is file",
			})
		}
	case SourceHTTP:
		u, err := url.Parse(c.Source.BaseURL)
		if c.Source.BaseURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "source.base_url",
				Value:   c.Source.BaseURL,
				Message: "must be an absolute http(s) URL when source.kind is http",
			})
		}
	}

	if c.Source.RequestTimeoutMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "source.request_timeout_ms",
			Value:   c.Source.RequestTimeoutMs,
			Message: "must be positive",
		})
	}

	// Zero delays are allowed; the simulated source then resolves immediately.
	const maxDelayMs = 60_000
	delays := []struct {
		field string
		value int
	}{
		{"source.aerodynamic_delay_ms", c.Source.AerodynamicDelayMs},
		{"source.telemetry_delay_ms", c.Source.TelemetryDelayMs},
	}
	for _, d := range delays {
		if d.value < 0 {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Value:   d.value,
				Message: "must be non-negative",
			})
		}
		if d.value > maxDelayMs {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Value:   d.value,
				Message: fmt.Sprintf("exceeds maximum of %dms", maxDelayMs),
			})
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	const minChartHeight = 3
	const maxChartHeight = 40
	if c.TUI.ChartHeight < minChartHeight || c.TUI.ChartHeight > maxChartHeight {
		errors = append(errors, ValidationError{
			Field:   "tui.chart_height",
			Value:   c.TUI.ChartHeight,
			Message: fmt.Sprintf("must be between %d and %d", minChartHeight, maxChartHeight),
		})
	}

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Server.Addr) == "" {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Value:   c.Server.Addr,
			Message: "cannot be empty",
		})
	}

	if c.Server.ShutdownTimeoutMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.shutdown_timeout_ms",
			Value:   c.Server.ShutdownTimeoutMs,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
