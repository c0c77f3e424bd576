package cmd

import (
	"strings"

	configcmd "github.com/Iron-Ham/pitwall/internal/cmd/config"
	"github.com/Iron-Ham/pitwall/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "pitwall",
	Short: "Race car performance dashboard",
	Long: `Pitwall shows aerodynamic performance trends, flagged components and
telemetry anomalies for a race car in a terminal dashboard.

Data comes from a built-in simulation, a fixture file or a remote data API.
Pitwall can also serve that data API itself with 'pitwall serve'.

Running pitwall without a subcommand opens the dashboard.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/pitwall/config.yaml)")
	flags.String("source", "", "data source: simulated, file or http")
	flags.String("fixture", "", "fixture file read by the file source")
	flags.String("url", "", "data API base URL used by the http source")
	flags.String("theme", "", "color theme")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(serveCmd)
	configcmd.Register(rootCmd)
}

// bindFlags maps command line flags onto config keys. It runs on every
// initialization so bindings survive a viper.Reset.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("source.kind", flags.Lookup("source"))
	_ = viper.BindPFlag("source.fixture_file", flags.Lookup("fixture"))
	_ = viper.BindPFlag("source.base_url", flags.Lookup("url"))
	_ = viper.BindPFlag("tui.theme", flags.Lookup("theme"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func initConfig() {
	bindFlags()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/pitwall")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PITWALL")
	// Replace dots with underscores for nested keys in env vars
	// e.g., PITWALL_SOURCE_BASE_URL for source.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
