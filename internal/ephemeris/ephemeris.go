// Package ephemeris defines the astronomical source consumed by chart
// assembly. The core never computes planetary longitudes itself; it asks a
// Source for raw tropical values and treats the source's accuracy model as
// opaque.
package ephemeris

import (
	"context"
	"errors"
	"time"
)

// ErrPointUnavailable reports that a single point or house cusp could not be
// resolved. Chart assembly absorbs this and continues with the remaining
// points.
var ErrPointUnavailable = errors.New("ephemeris: point unavailable")

// ErrSourceUnavailable reports that the source itself is missing or broken.
// There is no meaningful chart without one, so assembly fails outright.
var ErrSourceUnavailable = errors.New("ephemeris: source unavailable")

// GeoPosition is the geographic location a chart is cast for.
type GeoPosition struct {
	Latitude  float64
	Longitude float64
}

// Source supplies raw tropical longitudes for a birth moment and place.
type Source interface {
	// LongitudeOf returns the tropical longitude of a chart point
	// (lagna, sun, moon, ..., ketu). Returns ErrPointUnavailable when the
	// point cannot be resolved, ErrSourceUnavailable when the source is
	// unusable.
	LongitudeOf(ctx context.Context, point string, moment time.Time, geo GeoPosition) (float64, error)

	// HouseCusp returns the tropical longitude of a house cusp (1-12).
	HouseCusp(ctx context.Context, house int, moment time.Time, geo GeoPosition) (float64, error)
}
