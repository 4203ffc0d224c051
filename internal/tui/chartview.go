package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
	"github.com/Gauthampro7/vedic-astrology-app/internal/format"
)

// ChartView renders one assembled chart: birth details, the planetary
// position table, house cusps, and the ayanamsa used.
type ChartView struct {
	Chart *chart.Chart
	Width int
}

// View renders the chart as styled text.
func (v ChartView) View() string {
	if v.Chart == nil {
		return styleMuted.Render("No chart loaded.")
	}

	var b strings.Builder
	info := v.Chart.BirthInfo

	b.WriteString(styleTitle.Render(fmt.Sprintf(" %s ", info.Place)))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Born: "))
	b.WriteString(fmt.Sprintf("%s at %s (%s)\n", format.DateDisplay(info.Date), format.Time12Hour(info.Time), info.Timezone))
	if lat, lon, err := info.Coordinates(); err == nil {
		b.WriteString(styleLabel.Render("Location: "))
		b.WriteString(format.Coordinates(lat, lon))
		b.WriteString("\n")
	}
	b.WriteString(styleAccent.Render(fmt.Sprintf("Ayanamsa: %.4f°", v.Chart.Ayanamsa)))
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render(fmt.Sprintf("%-10s %-12s %-12s %-18s %s", "Planet", "Sign", "Longitude", "Nakshatra", "Pada")))
	b.WriteString("\n")
	for _, pos := range v.Chart.OrderedPositions() {
		b.WriteString(fmt.Sprintf("%-10s %-12s %-12s %-18s %d\n",
			titleCase(pos.Name), pos.Sign, format.Degree(pos.Degree), pos.Nakshatra, pos.Pada))
	}

	b.WriteString("\n")
	b.WriteString(styleHeader.Render("Houses"))
	b.WriteString("\n")

	houses := make([]int, 0, len(v.Chart.Houses))
	for h := range v.Chart.Houses {
		houses = append(houses, h)
	}
	sort.Ints(houses)
	for _, h := range houses {
		b.WriteString(fmt.Sprintf("%-24s %s\n", chart.HouseLabel(h), format.Degree(v.Chart.Houses[h])))
	}

	return b.String()
}

// titleCase uppercases the first letter of a point id for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
