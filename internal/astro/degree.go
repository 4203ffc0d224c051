// Package astro implements the sidereal position-resolution engine: degree
// arithmetic, the Lahiri ayanamsa approximation, and the fixed zodiac and
// nakshatra tables with their lookup functions.
package astro

import "math"

// Normalize maps any degree value into [0, 360). It is idempotent.
func Normalize(degree float64) float64 {
	n := math.Mod(degree, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// ToDMS decomposes a decimal degree into whole degrees, minutes, and seconds.
// The decomposition truncates rather than rounds: 29.999999° yields 29°59'59",
// never 30°0'0".
func ToDMS(degree float64) (deg, min, sec int) {
	deg = int(degree)
	minFrac := (degree - float64(deg)) * 60
	min = int(minFrac)
	sec = int((minFrac - float64(min)) * 60)
	return deg, min, sec
}
