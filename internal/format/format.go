// Package format renders degrees, coordinates, and dates for display.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
)

// Degree renders a decimal degree as D°M'S".
func Degree(degree float64) string {
	d, m, s := astro.ToDMS(degree)
	return fmt.Sprintf("%d°%d'%d\"", d, m, s)
}

// Coordinates renders a latitude/longitude pair with hemisphere letters,
// to arc-minute precision: 12°58'N 77°35'E.
func Coordinates(lat, lon float64) string {
	latDir, lonDir := "N", "E"
	if lat < 0 {
		latDir = "S"
	}
	if lon < 0 {
		lonDir = "W"
	}

	latAbs, lonAbs := math.Abs(lat), math.Abs(lon)
	latDeg := int(latAbs)
	latMin := int((latAbs - float64(latDeg)) * 60)
	lonDeg := int(lonAbs)
	lonMin := int((lonAbs - float64(lonDeg)) * 60)

	return fmt.Sprintf("%d°%d'%s %d°%d'%s", latDeg, latMin, latDir, lonDeg, lonMin, lonDir)
}

// DateDisplay renders a YYYY/MM/DD date as a long-form date, e.g.
// "Sunday, August 20, 1995". Unparseable input comes back unchanged.
func DateDisplay(date string) string {
	t, err := time.Parse(birth.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// Time12Hour converts HH:MM:SS to 12-hour form, e.g. "02:30:00 PM".
// Unparseable input comes back unchanged.
func Time12Hour(timeStr string) string {
	t, err := time.Parse(birth.TimeLayout, timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format("03:04:05 PM")
}
