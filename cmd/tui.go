package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/library"
	"github.com/Gauthampro7/vedic-astrology-app/internal/tui"
)

// tuiCmd launches the interactive chart browser.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive chart browser",
	Long: `Launch the TUI: browse saved charts, open one, or enter birth data
to calculate a new chart. New charts are saved to the charts directory
automatically.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.log.Sync()

	if err := deps.ensureChartsDir(); err != nil {
		return err
	}

	index, err := library.Open(commandContext(cmd), filepath.Join(deps.cfg.ChartsDir, "library.db"), deps.log)
	if err != nil {
		return err
	}
	defer index.Close()

	// Charts copied or deleted outside the TUI refresh the list live. A
	// failed watcher is not fatal; the list still refreshes on navigation.
	var watcher *library.Watcher
	if w, err := library.NewWatcher(deps.cfg.ChartsDir); err == nil {
		if err := w.Start(); err == nil {
			watcher = w
			defer w.Stop()
		}
	}

	return tui.Run(tui.Deps{
		Assembler: deps.assembler,
		Files:     deps.files,
		Index:     index,
		Watcher:   watcher,
		ChartsDir: deps.cfg.ChartsDir,
		Log:       deps.log,
	})
}
