package astro

import "go.uber.org/zap"

// Position is a fully resolved sidereal placement for a single chart point.
// Immutable once built.
type Position struct {
	Name           string  `json:"name"`
	Sign           string  `json:"sign"`
	Degree         float64 `json:"degree"` // degree within the sign, [0, 30)
	Nakshatra      string  `json:"nakshatra"`
	Pada           int     `json:"pada"`
	AbsoluteDegree float64 `json:"absolute_degree"` // sidereal longitude, [0, 360)
}

// DMS returns the within-sign degree as degrees, minutes, seconds.
func (p Position) DMS() (deg, min, sec int) {
	return ToDMS(p.Degree)
}

// Builder turns raw tropical longitudes into resolved positions.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a Builder that logs through the given logger. A nil
// logger is replaced with a no-op one.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// Build resolves one raw tropical longitude into a Position: converts to
// sidereal for the given year, then resolves sign, nakshatra, and pada.
func (b *Builder) Build(pointName string, tropicalDegree float64, year int) (Position, error) {
	sidereal, err := TropicalToSidereal(tropicalDegree, year)
	if err != nil {
		return Position{}, err
	}

	sign, degreeInSign := ResolveSign(sidereal)
	nak, pada := ResolveNakshatra(sidereal)

	b.log.Debug("resolved position",
		zap.String("point", pointName),
		zap.Float64("tropical", tropicalDegree),
		zap.Float64("sidereal", sidereal),
		zap.String("sign", sign.Name),
		zap.String("nakshatra", nak.Name),
		zap.Int("pada", pada))

	return Position{
		Name:           pointName,
		Sign:           sign.Name,
		Degree:         degreeInSign,
		Nakshatra:      nak.Name,
		Pada:           pada,
		AbsoluteDegree: sidereal,
	}, nil
}
