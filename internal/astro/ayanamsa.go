package astro

import "fmt"

// Lahiri ayanamsa constants. The model is a deliberate linear approximation
// anchored at March 2023; the annual rate is the commonly cited precession
// rate of 50.26 arcseconds per year. It is not an ephemeris-grade value and
// should not be read with more precision than it carries.
const (
	AyanamsaBaseYear   = 2023
	AyanamsaBaseValue  = 24.18
	AyanamsaAnnualRate = 0.013957142857

	// Years outside this window are rejected rather than extrapolated.
	MinYear = 1800
	MaxYear = 2200
)

// YearOutOfRangeError is returned when a birth year falls outside the range
// the ayanamsa approximation is valid for.
type YearOutOfRangeError struct {
	Year int
}

func (e *YearOutOfRangeError) Error() string {
	return fmt.Sprintf("astro: year %d outside valid range (%d-%d)", e.Year, MinYear, MaxYear)
}

// Ayanamsa computes the Lahiri ayanamsa for the given year using the linear
// approximation above. Returns a YearOutOfRangeError for years outside
// [MinYear, MaxYear].
func Ayanamsa(year int) (float64, error) {
	if year < MinYear || year > MaxYear {
		return 0, &YearOutOfRangeError{Year: year}
	}
	return AyanamsaBaseValue + float64(year-AyanamsaBaseYear)*AyanamsaAnnualRate, nil
}

// TropicalToSidereal converts a tropical longitude to a normalized sidereal
// longitude by subtracting the ayanamsa for the given year.
func TropicalToSidereal(degree float64, year int) (float64, error) {
	ay, err := Ayanamsa(year)
	if err != nil {
		return 0, err
	}
	return Normalize(degree - ay), nil
}
