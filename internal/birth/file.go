package birth

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// LoadFile reads a birth-data request file in TOML form:
//
//	date = "1995/08/20"
//	time = "14:30:00"
//	place = "Bengaluru, India"
//	timezone = "+05:30"
//	latitude = 12.9716   # optional; skips geocoding when present
//	longitude = 77.5946
//
// The returned Info is validated; coordinates are kept only when both are set.
func LoadFile(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("birth: reading %s: %w", path, err)
	}

	var info Info
	if err := toml.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("birth: parsing %s: %w", path, err)
	}

	info.Date = strings.TrimSpace(info.Date)
	info.Time = strings.TrimSpace(info.Time)
	info.Place = strings.TrimSpace(info.Place)
	info.Timezone = strings.TrimSpace(info.Timezone)

	if err := info.Validate(); err != nil {
		return Info{}, err
	}

	// A lone latitude or longitude is meaningless; require the pair.
	if (info.Latitude == nil) != (info.Longitude == nil) {
		return Info{}, fmt.Errorf("birth: %s: latitude and longitude must be set together", path)
	}
	return info, nil
}
