package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/logging"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ui"
	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

var showCmd = &cobra.Command{
	Use:   "show <chart.vac>",
	Short: "Display a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	log, err := logging.New(false, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	c, ok := vacfile.NewHandler(log).Load(args[0])
	if !ok {
		err := fmt.Errorf("could not read chart file %s", args[0])
		printer.Error(err.Error())
		return err
	}
	printer.Chart(c)
	return nil
}
