package astro

// Nakshatra span constants. Each of the 27 lunar mansions covers 13°20' and
// divides into four padas of 3°20'.
const (
	NakshatraSpan = 360.0 / 27.0
	PadaSpan      = NakshatraSpan / 4.0
)

// Nakshatra is one of the 27 fixed lunar-mansion records.
type Nakshatra struct {
	Index     int
	Name      string
	Direction string
	Lord      string
}

// DegreeStart returns the starting degree of the nakshatra's span.
func (n Nakshatra) DegreeStart() float64 {
	return float64(n.Index) * NakshatraSpan
}

// Nakshatras is the fixed lunar-mansion table, ordered by index.
var Nakshatras = [27]Nakshatra{
	{0, "Ashwini", "→", "Ketu"},
	{1, "Bharani", "↓", "Venus"},
	{2, "Krittika", "↓", "Sun"},
	{3, "Rohini", "↑", "Moon"},
	{4, "Mrigashira", "→", "Mars"},
	{5, "Ardra", "↑", "Rahu"},
	{6, "Punarvasu", "→", "Jupiter"},
	{7, "Pushya", "↑", "Saturn"},
	{8, "Ashlesha", "↓", "Mercury"},
	{9, "Magha", "↓", "Ketu"},
	{10, "Purva Phalguni", "↓", "Venus"},
	{11, "Uttara Phalguni", "↑", "Sun"},
	{12, "Hasta", "→", "Moon"},
	{13, "Chitra", "→", "Mars"},
	{14, "Swati", "→", "Rahu"},
	{15, "Vishakha", "↓", "Jupiter"},
	{16, "Anuradha", "→", "Saturn"},
	{17, "Jyeshtha", "→", "Mercury"},
	{18, "Mula", "↓", "Ketu"},
	{19, "Purva Ashadha", "↓", "Venus"},
	{20, "Uttara Ashadha", "↑", "Sun"},
	{21, "Shravana", "↑", "Moon"},
	{22, "Dhanishta", "↑", "Mars"},
	{23, "Shatabhisha", "↑", "Rahu"},
	{24, "Purva Bhadrapada", "↓", "Jupiter"},
	{25, "Uttara Bhadrapada", "↑", "Saturn"},
	{26, "Revati", "→", "Mercury"},
}

// ResolveNakshatra maps a sidereal degree to its nakshatra and pada (1-4).
// The pada clamp guards float rounding at the Revati→Ashwini wraparound.
func ResolveNakshatra(siderealDegree float64) (nak Nakshatra, pada int) {
	n := Normalize(siderealDegree)
	idx := int(n / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	nak = Nakshatras[idx]

	offset := n - nak.DegreeStart()
	pada = int(offset/PadaSpan) + 1
	if pada < 1 {
		pada = 1
	}
	if pada > 4 {
		pada = 4
	}
	return nak, pada
}
