package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Source.Kind != SourceSimulated {
		t.Errorf("Source.Kind = %q, want %q", cfg.Source.Kind, SourceSimulated)
	}
	if cfg.Source.AerodynamicDelayMs != 1500 {
		t.Errorf("Source.AerodynamicDelayMs = %d, want 1500", cfg.Source.AerodynamicDelayMs)
	}
	if cfg.Source.TelemetryDelayMs != 1000 {
		t.Errorf("Source.TelemetryDelayMs = %d, want 1000", cfg.Source.TelemetryDelayMs)
	}
	if cfg.Source.RequestTimeoutMs != 5000 {
		t.Errorf("Source.RequestTimeoutMs = %d, want 5000", cfg.Source.RequestTimeoutMs)
	}

	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if cfg.TUI.ChartHeight != 10 {
		t.Errorf("TUI.ChartHeight = %d, want 10", cfg.TUI.ChartHeight)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("Server.AllowedOrigins = %v, want [*]", cfg.Server.AllowedOrigins)
	}

	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"aerodynamic delay", cfg.Source.AerodynamicDelay(), 1500 * time.Millisecond},
		{"telemetry delay", cfg.Source.TelemetryDelay(), time.Second},
		{"request timeout", cfg.Source.RequestTimeout(), 5 * time.Second},
		{"shutdown timeout", cfg.Server.ShutdownTimeout(), 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got, want := ConfigDir(), "/custom/config/pitwall"; got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".config", "pitwall")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	if got, want := ConfigFile(), "/custom/config/pitwall/config.yaml"; got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Source.Kind != SourceSimulated {
		t.Errorf("Get().Source.Kind = %q, want %q", cfg.Source.Kind, SourceSimulated)
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads overrides", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()

		viper.Set("source.kind", SourceHTTP)
		viper.Set("source.base_url", "http://localhost:9000")
		viper.Set("tui.theme", "nord")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Source.Kind != SourceHTTP || cfg.Source.BaseURL != "http://localhost:9000" {
			t.Errorf("source not overridden: %+v", cfg.Source)
		}
		if cfg.TUI.Theme != "nord" {
			t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()

		viper.Set("source.kind", "carrier-pigeon")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should fail for an unknown source kind")
		}
		if _, ok := err.(ValidationErrors); !ok {
			t.Errorf("Load() error type = %T, want ValidationErrors", err)
		}
	})

	t.Run("Get falls back to defaults", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()

		viper.Set("tui.chart_height", 1000)

		if got := Get().TUI.ChartHeight; got != 10 {
			t.Errorf("Get().TUI.ChartHeight = %d, want default 10", got)
		}
	})
}
