package chart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
	"github.com/Gauthampro7/vedic-astrology-app/internal/ephemeris"
	"github.com/Gauthampro7/vedic-astrology-app/internal/geocode"
)

// ErrNoEphemeris reports that no ephemeris source is configured or the
// configured one is unusable. Assembly cannot degrade past this.
var ErrNoEphemeris = errors.New("chart: no usable ephemeris source")

// Assembler produces complete charts from validated birth information using
// an injected ephemeris source and, when coordinates are missing, a geocoder.
type Assembler struct {
	source   ephemeris.Source
	geocoder geocode.Geocoder
	builder  *astro.Builder
	log      *zap.Logger
}

// NewAssembler wires an Assembler. The geocoder may be nil when callers
// always supply coordinates themselves.
func NewAssembler(source ephemeris.Source, geocoder geocode.Geocoder, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		source:   source,
		geocoder: geocoder,
		builder:  astro.NewBuilder(log),
		log:      log,
	}
}

// Assemble computes the chart for the given birth info.
//
// Per-point failures degrade gracefully: the point is logged and omitted, the
// rest of the chart still assembles. Loss of the ephemeris source itself is
// fatal and returns ErrNoEphemeris.
func (a *Assembler) Assemble(ctx context.Context, info birth.Info) (*Chart, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if a.source == nil {
		return nil, ErrNoEphemeris
	}

	// The ayanamsa bounds the supported year range; checking it up front
	// avoids ten identical per-point failures for an out-of-range year.
	ayanamsa, err := astro.Ayanamsa(info.Year())
	if err != nil {
		return nil, err
	}

	if !info.Geocoded() {
		if a.geocoder == nil {
			return nil, fmt.Errorf("chart: %s has no coordinates and no geocoder is configured", info.Place)
		}
		lat, lon, err := a.geocoder.Coordinates(ctx, info.Place)
		if err != nil {
			return nil, err
		}
		info.SetCoordinates(lat, lon)
	}

	moment, err := info.Moment()
	if err != nil {
		return nil, err
	}
	lat, lon, _ := info.Coordinates()
	geo := ephemeris.GeoPosition{Latitude: lat, Longitude: lon}

	c := &Chart{
		BirthInfo: info,
		Planets:   make(map[string]astro.Position, len(Points)),
		Houses:    make(map[int]float64, HouseCount),
		Ayanamsa:  ayanamsa,
	}

	for _, point := range Points {
		tropical, err := a.source.LongitudeOf(ctx, point, moment, geo)
		if err != nil {
			if errors.Is(err, ephemeris.ErrSourceUnavailable) {
				return nil, fmt.Errorf("%w: %v", ErrNoEphemeris, err)
			}
			a.log.Warn("skipping unavailable point", zap.String("point", point), zap.Error(err))
			continue
		}
		pos, err := a.builder.Build(point, tropical, info.Year())
		if err != nil {
			a.log.Warn("skipping unresolvable point", zap.String("point", point), zap.Error(err))
			continue
		}
		c.Planets[point] = pos
	}

	for house := 1; house <= HouseCount; house++ {
		tropical, err := a.source.HouseCusp(ctx, house, moment, geo)
		if err != nil {
			if errors.Is(err, ephemeris.ErrSourceUnavailable) {
				return nil, fmt.Errorf("%w: %v", ErrNoEphemeris, err)
			}
			a.log.Warn("skipping unavailable house cusp", zap.Int("house", house), zap.Error(err))
			continue
		}
		sidereal, err := astro.TropicalToSidereal(tropical, info.Year())
		if err != nil {
			a.log.Warn("skipping unresolvable house cusp", zap.Int("house", house), zap.Error(err))
			continue
		}
		c.Houses[house] = sidereal
	}

	a.log.Info("assembled chart",
		zap.String("place", info.Place),
		zap.String("date", info.Date),
		zap.Int("points", len(c.Planets)),
		zap.Int("houses", len(c.Houses)),
		zap.Float64("ayanamsa", ayanamsa))

	return c, nil
}
