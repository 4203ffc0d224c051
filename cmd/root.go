package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gauthampro7/vedic-astrology-app/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vedic",
	Short: "Sidereal birth chart calculator",
	Long: `Vedic calculates sidereal (Lahiri ayanamsa) birth charts: planetary
positions, nakshatras, padas, and house cusps, backed by the Swiss Ephemeris
swetest binary. Charts are saved as .vac files and browsable from the TUI.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .vedic.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vedic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("VEDIC")
	viper.AutomaticEnv()

	if verbose, _ := rootCmd.Flags().GetBool("verbose"); verbose {
		viper.Set("verbose", true)
	}

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the TUI when the charts directory exists.
// Otherwise it falls back to showing help. Delegation passes the executing
// command, not tuiCmd: a subcommand cobra never ran has no context.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if _, err := os.Stat(cfg.ChartsDir); os.IsNotExist(err) {
		return cmd.Help()
	}
	return runTUI(cmd, nil)
}
