// Package birth holds validated birth information and the input validation
// rules applied before any chart calculation.
package birth

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Format layouts for the positional date/time fields.
const (
	DateLayout = "2006/01/02"
	TimeLayout = "15:04:05"
)

var timezonePattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)
var placePattern = regexp.MustCompile(`^[a-zA-Z0-9\s,\-]*$`)

// ValidationError reports a malformed input field. It is returned before any
// calculation work happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("birth: invalid %s: %s", e.Field, e.Message)
}

// Info is the birth record for one chart request. Latitude and Longitude are
// nil until the geocoding step fills them in.
type Info struct {
	Date      string   `json:"date" toml:"date"`           // YYYY/MM/DD
	Time      string   `json:"time" toml:"time"`           // HH:MM:SS
	Place     string   `json:"place" toml:"place"`         // free-form place name
	Timezone  string   `json:"timezone" toml:"timezone"`   // ±HH:MM offset
	Latitude  *float64 `json:"latitude" toml:"latitude"`   // set by geocoding
	Longitude *float64 `json:"longitude" toml:"longitude"` // set by geocoding
}

// New builds an Info from raw field strings, trimming whitespace and
// validating every field. Coordinates are left unset.
func New(date, timeStr, place, timezone string) (Info, error) {
	info := Info{
		Date:     strings.TrimSpace(date),
		Time:     strings.TrimSpace(timeStr),
		Place:    strings.TrimSpace(place),
		Timezone: strings.TrimSpace(timezone),
	}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// Validate checks every field and returns the first failure. All checks are
// format-level; no network or calculation work is done.
func (i Info) Validate() error {
	if err := ValidateDate(i.Date); err != nil {
		return err
	}
	if err := ValidateTime(i.Time); err != nil {
		return err
	}
	if err := ValidateTimezone(i.Timezone); err != nil {
		return err
	}
	return ValidatePlace(i.Place)
}

// ValidateDate checks the YYYY/MM/DD format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, strings.TrimSpace(date)); err != nil {
		return &ValidationError{Field: "date", Message: fmt.Sprintf("%q; expected YYYY/MM/DD", date)}
	}
	return nil
}

// ValidateTime checks the HH:MM:SS format.
func ValidateTime(timeStr string) error {
	if _, err := time.Parse(TimeLayout, strings.TrimSpace(timeStr)); err != nil {
		return &ValidationError{Field: "time", Message: fmt.Sprintf("%q; expected HH:MM:SS", timeStr)}
	}
	return nil
}

// ValidateTimezone checks the ±HH:MM offset format and that hours and minutes
// are in range.
func ValidateTimezone(tz string) error {
	tz = strings.TrimSpace(tz)
	if !timezonePattern.MatchString(tz) {
		return &ValidationError{Field: "timezone", Message: fmt.Sprintf("%q; expected +HH:MM or -HH:MM", tz)}
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(tz[1:], "%d:%d", &hours, &minutes); err != nil {
		return &ValidationError{Field: "timezone", Message: fmt.Sprintf("%q; expected +HH:MM or -HH:MM", tz)}
	}
	if hours > 23 || minutes > 59 {
		return &ValidationError{Field: "timezone", Message: fmt.Sprintf("%q; hours must be 0-23, minutes 0-59", tz)}
	}
	return nil
}

// ValidatePlace checks the place name: 2-100 chars, letters, digits, spaces,
// commas, and hyphens only.
func ValidatePlace(place string) error {
	place = strings.TrimSpace(place)
	if len(place) < 2 {
		return &ValidationError{Field: "place", Message: "too short"}
	}
	if len(place) > 100 {
		return &ValidationError{Field: "place", Message: "too long"}
	}
	if !placePattern.MatchString(place) {
		return &ValidationError{Field: "place", Message: "use letters, numbers, commas, hyphens only"}
	}
	return nil
}

// Year extracts the birth year from the date field. Validate first; Year
// assumes a well-formed date.
func (i Info) Year() int {
	t, err := time.Parse(DateLayout, i.Date)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Geocoded reports whether coordinates have been filled in.
func (i Info) Geocoded() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// Coordinates returns the latitude and longitude. It fails if the geocoding
// step has not run yet.
func (i Info) Coordinates() (lat, lon float64, err error) {
	if !i.Geocoded() {
		return 0, 0, fmt.Errorf("birth: coordinates not set; geocode the place first")
	}
	return *i.Latitude, *i.Longitude, nil
}

// SetCoordinates fills in the geocoded position.
func (i *Info) SetCoordinates(lat, lon float64) {
	i.Latitude = &lat
	i.Longitude = &lon
}

// Moment combines the date and time fields into a single time.Time carrying
// the timezone offset.
func (i Info) Moment() (time.Time, error) {
	loc, err := parseOffset(i.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, i.Date+" "+i.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth: combine date and time: %w", err)
	}
	return t, nil
}

func parseOffset(tz string) (*time.Location, error) {
	if err := ValidateTimezone(tz); err != nil {
		return nil, err
	}
	var hours, minutes int
	fmt.Sscanf(tz[1:], "%d:%d", &hours, &minutes)
	seconds := hours*3600 + minutes*60
	if tz[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone("UTC"+tz, seconds), nil
}
