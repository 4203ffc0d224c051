package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
	"github.com/Gauthampro7/vedic-astrology-app/internal/config"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ephemeris"
	"github.com/Gauthampro7/vedic-astrology-app/internal/geocode"
	"github.com/Gauthampro7/vedic-astrology-app/internal/logging"
	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

// appDeps bundles the wiring shared by the chart-producing commands.
type appDeps struct {
	cfg       config.Config
	log       *zap.Logger
	assembler *chart.Assembler
	files     *vacfile.Handler
}

// newAppDeps loads config, builds the logger, and wires the ephemeris and
// geocoding backends into an assembler.
func newAppDeps() (*appDeps, error) {
	cfg := config.Load()

	log, err := logging.New(cfg.Verbose, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	source := ephemeris.NewSwetest(cfg.SwetestPath, log)
	geocoder := geocode.NewNominatim(cfg.GeocoderURL, cfg.GeocoderUserAgent, log)

	return &appDeps{
		cfg:       cfg,
		log:       log,
		assembler: chart.NewAssembler(source, geocoder, log),
		files:     vacfile.NewHandler(log),
	}, nil
}

// commandContext returns the command's context, falling back to Background
// for commands that were not run through cobra's Execute path and so never
// had a context attached.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ensureChartsDir creates the configured charts directory if missing.
func (d *appDeps) ensureChartsDir() error {
	if err := os.MkdirAll(d.cfg.ChartsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create charts directory %s: %w", d.cfg.ChartsDir, err)
	}
	return nil
}
