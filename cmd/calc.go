package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ui"
	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a sidereal birth chart",
	Long: `Calculate a sidereal birth chart from birth data given as flags or a
TOML request file. The birth place is geocoded unless explicit coordinates
are provided. Pass -o to save the result as a .vac file.`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().String("date", "", "birth date (YYYY/MM/DD)")
	calcCmd.Flags().String("time", "", "birth time (HH:MM:SS)")
	calcCmd.Flags().String("place", "", "birth place, e.g. \"Bengaluru, India\"")
	calcCmd.Flags().String("timezone", "", "UTC offset (±HH:MM)")
	calcCmd.Flags().Float64("lat", 0, "latitude (skips geocoding when set with --lon)")
	calcCmd.Flags().Float64("lon", 0, "longitude (skips geocoding when set with --lat)")
	calcCmd.Flags().StringP("file", "f", "", "TOML file with birth data (overrides the data flags)")
	calcCmd.Flags().StringP("output", "o", "", "save the chart to this .vac file")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.log.Sync()

	info, err := calcBirthInfo(cmd)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	c, err := deps.assembler.Assemble(commandContext(cmd), info)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Chart(c)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		output = vacfile.EnsureExtension(output)
		if !deps.files.Save(c, output) {
			printer.Error("failed to save " + output)
			return nil
		}
		printer.Saved(output)
	}
	return nil
}

// calcBirthInfo builds the birth data from --file or the individual flags.
func calcBirthInfo(cmd *cobra.Command) (birth.Info, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return birth.LoadFile(file)
	}

	date, _ := cmd.Flags().GetString("date")
	timeStr, _ := cmd.Flags().GetString("time")
	place, _ := cmd.Flags().GetString("place")
	timezone, _ := cmd.Flags().GetString("timezone")

	info, err := birth.New(date, timeStr, place, timezone)
	if err != nil {
		return birth.Info{}, err
	}
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		info.SetCoordinates(lat, lon)
	}
	return info, nil
}
