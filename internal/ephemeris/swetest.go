package ephemeris

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
)

// swetest body name -> chart point id, as printed by `swetest -fPl`.
var swetestNames = map[string]string{
	"Sun":       "sun",
	"Moon":      "moon",
	"Mercury":   "mercury",
	"Venus":     "venus",
	"Mars":      "mars",
	"Jupiter":   "jupiter",
	"Saturn":    "saturn",
	"mean Node": "rahu",
	"Ascendant": "lagna",
}

// Swetest resolves longitudes by shelling out to the Swiss Ephemeris swetest
// binary. One invocation per (moment, place) computes every planet and house
// cusp; the result is cached so the per-point interface does not re-run the
// binary ten times for the same chart.
type Swetest struct {
	Path string
	log  *zap.Logger

	mu     sync.Mutex
	key    string
	cached *swetestResult
}

type swetestResult struct {
	points map[string]float64
	cusps  map[int]float64
}

// NewSwetest returns a Source backed by the swetest binary at path.
func NewSwetest(path string, log *zap.Logger) *Swetest {
	if log == nil {
		log = zap.NewNop()
	}
	return &Swetest{Path: path, log: log}
}

// Validate probes the binary so a missing installation is reported before any
// chart work starts.
func (s *Swetest) Validate() error {
	cmd := exec.Command(s.Path, "-h")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("swetest binary not found at %q: %w", s.Path, ErrSourceUnavailable)
	}
	return nil
}

// LongitudeOf implements Source.
func (s *Swetest) LongitudeOf(ctx context.Context, point string, moment time.Time, geo GeoPosition) (float64, error) {
	res, err := s.compute(ctx, moment, geo)
	if err != nil {
		return 0, err
	}
	lon, ok := res.points[point]
	if !ok {
		return 0, fmt.Errorf("ephemeris: %s: %w", point, ErrPointUnavailable)
	}
	return lon, nil
}

// HouseCusp implements Source.
func (s *Swetest) HouseCusp(ctx context.Context, house int, moment time.Time, geo GeoPosition) (float64, error) {
	if house < 1 || house > 12 {
		return 0, fmt.Errorf("ephemeris: house %d: %w", house, ErrPointUnavailable)
	}
	res, err := s.compute(ctx, moment, geo)
	if err != nil {
		return 0, err
	}
	lon, ok := res.cusps[house]
	if !ok {
		return 0, fmt.Errorf("ephemeris: house %d: %w", house, ErrPointUnavailable)
	}
	return lon, nil
}

// compute runs swetest once for the given moment and place, parsing planets,
// the ascendant, and all twelve cusps from its output. Results for the most
// recent (moment, place) pair are cached.
func (s *Swetest) compute(ctx context.Context, moment time.Time, geo GeoPosition) (*swetestResult, error) {
	ut := moment.UTC()
	key := fmt.Sprintf("%s|%.6f|%.6f", ut.Format(time.RFC3339), geo.Latitude, geo.Longitude)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && s.key == key {
		return s.cached, nil
	}

	args := []string{
		fmt.Sprintf("-b%d.%d.%d", ut.Day(), int(ut.Month()), ut.Year()),
		"-ut" + ut.Format("15:04:05"),
		"-p0123456m",
		"-fPl",
		"-head",
		fmt.Sprintf("-house%.6f,%.6f,P", geo.Longitude, geo.Latitude),
	}

	cmd := exec.CommandContext(ctx, s.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.log.Debug("running swetest", zap.String("path", s.Path), zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ephemeris: swetest failed: %v (stderr: %s): %w",
			err, strings.TrimSpace(stderr.String()), ErrSourceUnavailable)
	}

	res, err := parseSwetestOutput(stdout.String())
	if err != nil {
		return nil, err
	}

	s.key = key
	s.cached = res
	return res, nil
}

// parseSwetestOutput extracts point and cusp longitudes from swetest stdout.
// Planet lines look like "Sun       127.1234567"; cusp lines like
// "house  1   213.4567890". Ketu is derived as the point opposite Rahu.
func parseSwetestOutput(out string) (*swetestResult, error) {
	res := &swetestResult{
		points: make(map[string]float64),
		cusps:  make(map[int]float64),
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		if fields[0] == "house" && len(fields) >= 3 {
			num, err := strconv.Atoi(fields[1])
			if err != nil || num < 1 || num > 12 {
				continue
			}
			lon, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				continue
			}
			res.cusps[num] = lon
			continue
		}

		lon, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			continue
		}
		name := strings.Join(fields[:len(fields)-1], " ")
		if point, ok := swetestNames[name]; ok {
			res.points[point] = lon
		}
	}

	if len(res.points) == 0 && len(res.cusps) == 0 {
		return nil, fmt.Errorf("ephemeris: no usable output from swetest: %w", ErrSourceUnavailable)
	}

	// Ketu sits exactly opposite Rahu on the circle.
	if rahu, ok := res.points["rahu"]; ok {
		res.points["ketu"] = astro.Normalize(rahu + 180)
	}
	return res, nil
}
