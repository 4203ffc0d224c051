package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/extension"
	"github.com/Gauthampro7/vedic-astrology-app/internal/logging"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ui"
	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available extension modules",
	Args:  cobra.NoArgs,
	RunE:  runModules,
}

func init() {
	runCmd := &cobra.Command{
		Use:   "run <module> <chart.vac>",
		Short: "Run an extension module against a saved chart",
		Long: `Run one extension module (see "vedic modules" for the list) against
a saved chart and print its result as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: runModulesRun,
	}
	modulesCmd.AddCommand(runCmd)
	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	registry := extension.NewRegistry(nil)
	rows := make([][3]string, 0)
	for _, id := range registry.IDs() {
		m, _ := registry.Get(id)
		rows = append(rows, [3]string{id, m.Version(), m.Description()})
	}
	printer.ModuleList(rows)
	return nil
}

func runModulesRun(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	id, path := args[0], args[1]

	log, err := logging.New(false, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	c, ok := vacfile.NewHandler(log).Load(path)
	if !ok {
		err := fmt.Errorf("could not read chart file %s", path)
		printer.Error(err.Error())
		return err
	}

	result, err := extension.NewRegistry(log).Execute(id, c)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
