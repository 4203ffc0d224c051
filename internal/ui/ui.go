package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
	"github.com/Gauthampro7/vedic-astrology-app/internal/format"
	"github.com/Gauthampro7/vedic-astrology-app/internal/library"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

// Printer writes human-readable command output. Status lines go to stderr,
// data output to stdout, so charts stay pipeable.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.Err, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) CheckOK(msg string) {
	fmt.Fprintf(p.Err, green+"✓ "+reset+"%s\n", msg)
}

func (p *Printer) CheckFail(msg string) {
	fmt.Fprintf(p.Err, red+"✗ "+reset+"%s\n", msg)
}

func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.Err, green+"✓ saved"+reset+" %s\n", path)
}

// Chart prints a full chart: birth block, planetary positions, house cusps.
func (p *Printer) Chart(c *chart.Chart) {
	info := c.BirthInfo

	fmt.Fprintf(p.Out, bold+cyan+"%s"+reset+"\n", info.Place)
	fmt.Fprintf(p.Out, "%s at %s (%s)\n", format.DateDisplay(info.Date), format.Time12Hour(info.Time), info.Timezone)
	if lat, lon, err := info.Coordinates(); err == nil {
		fmt.Fprintf(p.Out, "%s\n", format.Coordinates(lat, lon))
	}
	fmt.Fprintf(p.Out, dim+"ayanamsa %.4f°"+reset+"\n\n", c.Ayanamsa)

	fmt.Fprintf(p.Out, bold+"%-10s %-12s %-12s %-18s %s"+reset+"\n", "Planet", "Sign", "Longitude", "Nakshatra", "Pada")
	for _, pos := range c.OrderedPositions() {
		fmt.Fprintf(p.Out, "%-10s %-12s %-12s %-18s %d\n",
			titleCase(pos.Name), pos.Sign, format.Degree(pos.Degree), pos.Nakshatra, pos.Pada)
	}
	for _, point := range chart.Points {
		if _, ok := c.Planets[point]; !ok {
			fmt.Fprintf(p.Err, yellow+"⚠ %s unavailable"+reset+"\n", point)
		}
	}

	fmt.Fprintf(p.Out, "\n"+bold+"Houses"+reset+"\n")
	houses := make([]int, 0, len(c.Houses))
	for h := range c.Houses {
		houses = append(houses, h)
	}
	sort.Ints(houses)
	for _, h := range houses {
		fmt.Fprintf(p.Out, "%-24s %s\n", chart.HouseLabel(h), format.Degree(c.Houses[h]))
	}
}

// titleCase uppercases the first letter of a point id for display. Hand-edited
// chart files can carry an empty name, so the guard matters.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ChartList prints the library index as a table.
func (p *Printer) ChartList(entries []library.Entry) {
	if len(entries) == 0 {
		p.Info("no saved charts")
		return
	}
	fmt.Fprintf(p.Out, bold+"%-30s %-12s %-10s %s"+reset+"\n", "Place", "Date", "Time", "File")
	for _, e := range entries {
		fmt.Fprintf(p.Out, "%-30s %-12s %-10s %s\n", e.Place, e.Date, e.Time, e.Path)
	}
}

// ModuleList prints the registered extension modules.
func (p *Printer) ModuleList(rows [][3]string) {
	fmt.Fprintf(p.Out, bold+"%-16s %-8s %s"+reset+"\n", "Module", "Version", "Description")
	for _, r := range rows {
		fmt.Fprintf(p.Out, magenta+"%-16s"+reset+" %-8s %s\n", r[0], r[1], r[2])
	}
}
