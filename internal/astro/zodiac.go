package astro

// ZodiacSign is one of the 12 fixed sign records. Each sign owns the
// contiguous 30° range [Index*30, Index*30+30).
type ZodiacSign struct {
	Index    int
	Name     string
	Symbol   string
	Element  string
	Modality string
}

// DegreeRange returns the [start, end) degree span owned by the sign.
func (s ZodiacSign) DegreeRange() (start, end float64) {
	start = float64(s.Index) * 30
	return start, start + 30
}

// Signs is the fixed zodiac table, ordered by index.
var Signs = [12]ZodiacSign{
	{0, "Aries", "♈", "Fire", "Cardinal"},
	{1, "Taurus", "♉", "Earth", "Fixed"},
	{2, "Gemini", "♊", "Air", "Mutable"},
	{3, "Cancer", "♋", "Water", "Cardinal"},
	{4, "Leo", "♌", "Fire", "Fixed"},
	{5, "Virgo", "♍", "Earth", "Mutable"},
	{6, "Libra", "♎", "Air", "Cardinal"},
	{7, "Scorpio", "♏", "Water", "Fixed"},
	{8, "Sagittarius", "♐", "Fire", "Mutable"},
	{9, "Capricorn", "♑", "Earth", "Cardinal"},
	{10, "Aquarius", "♒", "Air", "Fixed"},
	{11, "Pisces", "♓", "Water", "Mutable"},
}

// ResolveSign maps a sidereal degree to its zodiac sign and the degree within
// that sign. The input is normalized first, so resolution always succeeds.
func ResolveSign(siderealDegree float64) (sign ZodiacSign, degreeInSign float64) {
	n := Normalize(siderealDegree)
	idx := int(n / 30)
	if idx > 11 {
		idx = 11
	}
	return Signs[idx], n - float64(idx)*30
}
