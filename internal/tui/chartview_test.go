package tui

import (
	"strings"
	"testing"

	"github.com/Gauthampro7/vedic-astrology-app/internal/astro"
	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
)

func testChart(t *testing.T) *chart.Chart {
	t.Helper()
	info, err := birth.New("1995/08/20", "14:30:00", "Bengaluru, India", "+05:30")
	if err != nil {
		t.Fatal(err)
	}
	info.SetCoordinates(12.9716, 77.5946)

	builder := astro.NewBuilder(nil)
	planets := make(map[string]astro.Position)
	for i, point := range chart.Points {
		if point == "saturn" {
			continue // partial chart: one point unavailable
		}
		pos, err := builder.Build(point, float64(i)*36.5, 1995)
		if err != nil {
			t.Fatal(err)
		}
		planets[point] = pos
	}
	return &chart.Chart{
		BirthInfo: info,
		Planets:   planets,
		Houses:    map[int]float64{1: 242.5, 7: 62.5, 10: 155.0},
		Ayanamsa:  23.7892,
	}
}

func TestChartView(t *testing.T) {
	t.Parallel()

	view := ChartView{Chart: testChart(t), Width: 80}.View()

	for _, want := range []string{
		"Bengaluru, India",
		"Sunday, August 20, 1995",
		"02:30:00 PM",
		"Ayanamsa: 23.7892°",
		"Lagna",
		"Moon",
		"Nakshatra",
		"1st House (Ascendant)",
		"7th House (Descendant)",
		"10th House (Midheaven)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("chart view missing %q:\n%s", want, view)
		}
	}

	if strings.Contains(view, "Saturn") {
		t.Errorf("chart view shows the omitted saturn point:\n%s", view)
	}
}

func TestChartView_NilChart(t *testing.T) {
	t.Parallel()

	view := ChartView{}.View()
	if !strings.Contains(view, "No chart loaded") {
		t.Errorf("nil chart view = %q", view)
	}
}
