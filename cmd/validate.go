package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/config"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ephemeris"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that required dependencies are available",
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.New()
		cfg := config.Load()
		ok := true

		source := ephemeris.NewSwetest(cfg.SwetestPath, nil)
		if err := source.Validate(); err != nil {
			printer.CheckFail(fmt.Sprintf("swetest: %v", err))
			ok = false
		} else {
			printer.CheckOK("swetest binary found")
		}

		if info, err := os.Stat(cfg.ChartsDir); err != nil {
			printer.CheckFail(fmt.Sprintf("charts directory %s not found (created on first save)", cfg.ChartsDir))
		} else if !info.IsDir() {
			printer.CheckFail(fmt.Sprintf("charts path %s is not a directory", cfg.ChartsDir))
			ok = false
		} else {
			printer.CheckOK("charts directory " + cfg.ChartsDir)
		}

		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
