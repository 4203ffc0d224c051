package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/library"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved charts",
	Long: `List the charts saved in the charts directory. The directory is
rescanned first, so charts copied in from elsewhere show up too.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.log.Sync()

	if err := deps.ensureChartsDir(); err != nil {
		printer.Error(err.Error())
		return err
	}

	ctx := commandContext(cmd)
	index, err := library.Open(ctx, filepath.Join(deps.cfg.ChartsDir, "library.db"), deps.log)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer index.Close()

	if err := index.Rescan(ctx, deps.cfg.ChartsDir, deps.files); err != nil {
		printer.Error(err.Error())
		return err
	}
	entries, err := index.List(ctx)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.ChartList(entries)
	return nil
}
