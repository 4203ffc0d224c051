package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the application.
// Values are populated from .vedic.yaml, VEDIC_* env vars, and CLI flags.
type Config struct {
	ChartsDir         string `mapstructure:"charts_dir"`
	SwetestPath       string `mapstructure:"swetest_path"`
	GeocoderURL       string `mapstructure:"geocoder_url"`
	GeocoderUserAgent string `mapstructure:"geocoder_user_agent"`
	LogFile           string `mapstructure:"log_file"`
	Verbose           bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("charts_dir", defaultChartsDir())
	viper.SetDefault("swetest_path", "swetest")
	viper.SetDefault("geocoder_url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoder_user_agent", "vedic-astrology-app")
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// defaultChartsDir is ~/.vedic/charts, falling back to ./charts when the home
// directory cannot be determined.
func defaultChartsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "charts"
	}
	return filepath.Join(home, ".vedic", "charts")
}
