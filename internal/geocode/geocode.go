// Package geocode resolves place names to geographic coordinates through the
// OpenStreetMap Nominatim API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrLocationNotFound reports that the geocoder returned no match for a place
// name.
var ErrLocationNotFound = errors.New("geocode: location not found")

// Geocoder resolves a free-form place name to coordinates.
type Geocoder interface {
	Coordinates(ctx context.Context, place string) (lat, lon float64, err error)
}

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim is a Geocoder backed by a Nominatim-compatible HTTP endpoint.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
	log       *zap.Logger
}

// NewNominatim builds a Nominatim geocoder. Empty baseURL and userAgent fall
// back to the public endpoint and a default agent string. Nominatim's usage
// policy requires an identifying User-Agent.
func NewNominatim(baseURL, userAgent string, log *zap.Logger) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "vedic-astrology-app"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Nominatim{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Coordinates implements Geocoder via GET /search. An empty result set maps
// to ErrLocationNotFound.
func (n *Nominatim) Coordinates(ctx context.Context, place string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", n.UserAgent)

	resp, err := n.Client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: lookup %q: %w", place, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode: lookup %q: unexpected status %d", place, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("geocode: decode response for %q: %w", place, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("geocode: %q: %w", place, ErrLocationNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: parse longitude %q: %w", results[0].Lon, err)
	}

	n.log.Info("geocoded place",
		zap.String("place", place),
		zap.String("match", results[0].DisplayName),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return lat, lon, nil
}
