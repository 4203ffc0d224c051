// Package chart assembles and represents complete sidereal birth charts.
package chart

import (
	"strings"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
)

// Points lists the ten chart points in canonical order: the ascendant
// followed by the nine grahas.
var Points = []string{
	"lagna", "sun", "moon", "mars", "mercury",
	"jupiter", "venus", "saturn", "rahu", "ketu",
}

// HouseCount is the number of bhava cusps in a chart.
const HouseCount = 12

// houseLabels maps house numbers to their display labels. The angular houses
// carry their traditional names.
var houseLabels = map[int]string{
	1:  "1st House (Ascendant)",
	2:  "2nd House",
	3:  "3rd House",
	4:  "4th House (IC)",
	5:  "5th House",
	6:  "6th House",
	7:  "7th House (Descendant)",
	8:  "8th House",
	9:  "9th House",
	10: "10th House (Midheaven)",
	11: "11th House",
	12: "12th House",
}

// HouseLabel returns the display label for a house number.
func HouseLabel(house int) string {
	if label, ok := houseLabels[house]; ok {
		return label
	}
	return ""
}

// Chart is a fully assembled sidereal birth chart. It is built once per
// calculation and read-only afterward.
type Chart struct {
	BirthInfo birth.Info
	Planets   map[string]astro.Position // keyed by point id; points that failed are absent
	Houses    map[int]float64           // sidereal cusp degree per house 1-12
	Ayanamsa  float64
}

// Planet returns the position for a point by name, case-insensitively.
func (c *Chart) Planet(name string) (astro.Position, bool) {
	p, ok := c.Planets[strings.ToLower(name)]
	return p, ok
}

// OrderedPositions returns the resolved positions in canonical point order,
// skipping points that were unavailable at assembly time.
func (c *Chart) OrderedPositions() []astro.Position {
	out := make([]astro.Position, 0, len(c.Planets))
	for _, point := range Points {
		if p, ok := c.Planets[point]; ok {
			out = append(out, p)
		}
	}
	return out
}
