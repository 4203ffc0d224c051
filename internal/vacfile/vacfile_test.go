package vacfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

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
	// Deliberately partial: saturn omitted, as happens when the ephemeris
	// cannot resolve a point.
	for i, point := range chart.Points {
		if point == "saturn" {
			continue
		}
		pos, err := builder.Build(point, float64(i)*36.5, 1995)
		if err != nil {
			t.Fatal(err)
		}
		planets[point] = pos
	}

	houses := make(map[int]float64)
	for h := 1; h <= 12; h++ {
		houses[h] = astro.Normalize(242.5 + float64(h-1)*30)
	}

	ay, err := astro.Ayanamsa(1995)
	if err != nil {
		t.Fatal(err)
	}
	return &chart.Chart{BirthInfo: info, Planets: planets, Houses: houses, Ayanamsa: ay}
}

func TestHandler_SaveLoad_RoundTrip(t *testing.T) {
	h := NewHandler(nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "test-chart")

	original := testChart(t)
	if !h.Save(original, path) {
		t.Fatal("Save returned false")
	}

	// Extension is appended when missing.
	if _, err := os.Stat(path + ".vac"); err != nil {
		t.Fatalf("saved file not found at %s.vac: %v", path, err)
	}

	loaded, ok := h.Load(path + ".vac")
	if !ok {
		t.Fatal("Load returned absence for a freshly saved chart")
	}

	opts := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(original.Planets, loaded.Planets, opts); diff != "" {
		t.Errorf("planets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.Houses, loaded.Houses, opts); diff != "" {
		t.Errorf("houses mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.BirthInfo, loaded.BirthInfo); diff != "" {
		t.Errorf("birth info mismatch (-want +got):\n%s", diff)
	}
	if loaded.Ayanamsa != original.Ayanamsa {
		t.Errorf("ayanamsa = %v, want %v", loaded.Ayanamsa, original.Ayanamsa)
	}
	if len(loaded.Planets) != 9 {
		t.Errorf("loaded %d planets, want 9 (partial chart preserved)", len(loaded.Planets))
	}
}

func TestHandler_Save_FileSchema(t *testing.T) {
	h := NewHandler(nil)
	h.now = func() time.Time { return time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC) }
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.vac")

	if !h.Save(testChart(t), path) {
		t.Fatal("Save returned false")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}

	for _, key := range []string{"version", "created", "birth_info", "ayanamsa", "planets", "houses"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("saved document missing %q", key)
		}
	}

	var version string
	json.Unmarshal(raw["version"], &version)
	if version != "1.0" {
		t.Errorf("version = %q, want 1.0", version)
	}

	var created string
	json.Unmarshal(raw["created"], &created)
	if _, err := time.Parse(time.RFC3339, created); err != nil {
		t.Errorf("created %q is not RFC3339: %v", created, err)
	}

	// House keys serialize as strings per the schema.
	var houses map[string]float64
	if err := json.Unmarshal(raw["houses"], &houses); err != nil {
		t.Fatalf("houses do not decode with string keys: %v", err)
	}
	if _, ok := houses["1"]; !ok {
		t.Error(`houses missing key "1"`)
	}
	if _, ok := houses["12"]; !ok {
		t.Error(`houses missing key "12"`)
	}
}

func TestHandler_Save_BadDirectory(t *testing.T) {
	h := NewHandler(nil)
	if h.Save(testChart(t), "/nonexistent-dir/deep/chart.vac") {
		t.Error("Save into missing directory returned true")
	}
}

func TestHandler_Load_MalformedJSON(t *testing.T) {
	h := NewHandler(nil)
	path := filepath.Join(t.TempDir(), "broken.vac")
	if err := os.WriteFile(path, []byte("{this is not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c, ok := h.Load(path); ok || c != nil {
		t.Error("Load of malformed JSON returned a chart")
	}
}

func TestHandler_Load_MissingFile(t *testing.T) {
	h := NewHandler(nil)
	if c, ok := h.Load(filepath.Join(t.TempDir(), "absent.vac")); ok || c != nil {
		t.Error("Load of missing file returned a chart")
	}
}

func TestHandler_Load_MissingRequiredFields(t *testing.T) {
	h := NewHandler(nil)
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"no birth_info", `{"version":"1.0","ayanamsa":23.8,"planets":{},"houses":{}}`},
		{"no ayanamsa", `{"version":"1.0","birth_info":{"date":"1995/08/20","time":"14:30:00","place":"Bengaluru","timezone":"+05:30","latitude":null,"longitude":null},"planets":{},"houses":{}}`},
		{"no planets", `{"version":"1.0","birth_info":{"date":"1995/08/20","time":"14:30:00","place":"Bengaluru","timezone":"+05:30","latitude":null,"longitude":null},"ayanamsa":23.8,"houses":{}}`},
		{"no houses", `{"version":"1.0","birth_info":{"date":"1995/08/20","time":"14:30:00","place":"Bengaluru","timezone":"+05:30","latitude":null,"longitude":null},"ayanamsa":23.8,"planets":{}}`},
		{"invalid birth_info", `{"version":"1.0","birth_info":{"date":"soon","time":"14:30:00","place":"Bengaluru","timezone":"+05:30","latitude":null,"longitude":null},"ayanamsa":23.8,"planets":{},"houses":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".vac")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, ok := h.Load(path); ok {
				t.Error("Load returned a chart despite missing required field")
			}
		})
	}
}

func TestHandler_Load_VersionMismatchStillLoads(t *testing.T) {
	h := NewHandler(nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "old.vac")

	// Save then rewrite the version field to something older.
	if !h.Save(testChart(t), path) {
		t.Fatal("Save returned false")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	doc["version"] = "0.9"
	data, _ = json.Marshal(doc)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := h.Load(path); !ok {
		t.Error("Load refused a parseable file with an older version string")
	}
}

func TestHandler_Summarize(t *testing.T) {
	h := NewHandler(nil)
	h.now = func() time.Time { return time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC) }
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.vac")

	if !h.Save(testChart(t), path) {
		t.Fatal("Save returned false")
	}

	s, ok := h.Summarize(path)
	if !ok {
		t.Fatal("Summarize returned absence")
	}
	want := Summary{
		Place:   "Bengaluru, India",
		Date:    "1995/08/20",
		Time:    "14:30:00",
		Created: "2023-06-15T10:00:00Z",
		Version: "1.0",
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_Summarize_DefaultsForMissingMetadata(t *testing.T) {
	h := NewHandler(nil)
	path := filepath.Join(t.TempDir(), "bare.vac")
	body := `{"birth_info":{"date":"1995/08/20","time":"14:30:00","place":"Bengaluru","timezone":"+05:30"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, ok := h.Summarize(path)
	if !ok {
		t.Fatal("Summarize returned absence")
	}
	if s.Created != "Unknown" || s.Version != "Unknown" {
		t.Errorf("defaults = (%q, %q), want Unknown/Unknown", s.Created, s.Version)
	}
}

func TestEnsureExtension(t *testing.T) {
	if got := EnsureExtension("chart"); got != "chart.vac" {
		t.Errorf("EnsureExtension(chart) = %q", got)
	}
	if got := EnsureExtension("chart.vac"); got != "chart.vac" {
		t.Errorf("EnsureExtension(chart.vac) = %q", got)
	}
}
