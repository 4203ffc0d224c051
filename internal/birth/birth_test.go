package birth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"valid", "1995/08/20", true},
		{"valid with surrounding space", " 2000/01/01 ", true},
		{"wrong separator", "1995-08-20", false},
		{"impossible month", "1995/13/01", false},
		{"impossible day", "1995/02/30", false},
		{"empty", "", false},
		{"garbage", "yesterday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.in)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateDate(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestValidateTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"valid", "14:30:00", true},
		{"midnight", "00:00:00", true},
		{"last second", "23:59:59", true},
		{"hour out of range", "24:00:00", false},
		{"missing seconds", "14:30", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTime(tt.in)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateTime(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"positive offset", "+05:30", true},
		{"negative offset", "-08:00", true},
		{"zero offset", "+00:00", true},
		{"missing sign", "05:30", false},
		{"hours too large", "+24:00", false},
		{"minutes too large", "+05:60", false},
		{"named zone", "IST", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.in)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateTimezone(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestValidatePlace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"simple city", "Bengaluru", true},
		{"city and country", "Bengaluru, India", true},
		{"hyphenated", "Winston-Salem", true},
		{"too short", "A", false},
		{"invalid characters", "Paris; DROP TABLE", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlace(tt.in)
			if (err == nil) != tt.ok {
				t.Errorf("ValidatePlace(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestNew(t *testing.T) {
	info, err := New(" 1995/08/20 ", "14:30:00", "Bengaluru, India", "+05:30")
	if err != nil {
		t.Fatalf("New returned unexpected error: %v", err)
	}
	if info.Date != "1995/08/20" {
		t.Errorf("Date = %q, want trimmed value", info.Date)
	}
	if info.Year() != 1995 {
		t.Errorf("Year() = %d, want 1995", info.Year())
	}
	if info.Geocoded() {
		t.Error("fresh Info reports Geocoded() = true")
	}

	_, err = New("bad", "14:30:00", "Bengaluru", "+05:30")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("New with bad date: error = %v, want *ValidationError", err)
	}
	if verr.Field != "date" {
		t.Errorf("ValidationError.Field = %q, want date", verr.Field)
	}
}

func TestInfo_Coordinates(t *testing.T) {
	info, err := New("1995/08/20", "14:30:00", "Bengaluru", "+05:30")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := info.Coordinates(); err == nil {
		t.Error("Coordinates before geocoding: want error, got nil")
	}

	info.SetCoordinates(12.9716, 77.5946)
	lat, lon, err := info.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates after SetCoordinates: %v", err)
	}
	if lat != 12.9716 || lon != 77.5946 {
		t.Errorf("Coordinates = (%v, %v), want (12.9716, 77.5946)", lat, lon)
	}
}

func TestInfo_Moment(t *testing.T) {
	info, err := New("1995/08/20", "14:30:00", "Bengaluru", "+05:30")
	if err != nil {
		t.Fatal(err)
	}
	m, err := info.Moment()
	if err != nil {
		t.Fatalf("Moment returned unexpected error: %v", err)
	}
	if m.Year() != 1995 || m.Hour() != 14 || m.Minute() != 30 {
		t.Errorf("Moment = %v, want 1995-08-20 14:30:00", m)
	}
	_, offset := m.Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("Moment zone offset = %d, want 19800", offset)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "birth.toml")
		content := `date = "1995/08/20"
time = "14:30:00"
place = "Bengaluru, India"
timezone = "+05:30"
latitude = 12.9716
longitude = 77.5946
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		info, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned unexpected error: %v", err)
		}
		if !info.Geocoded() {
			t.Error("coordinates from file not applied")
		}
		if info.Place != "Bengaluru, India" {
			t.Errorf("Place = %q", info.Place)
		}
	})

	t.Run("lone latitude rejected", func(t *testing.T) {
		path := filepath.Join(dir, "half.toml")
		content := `date = "1995/08/20"
time = "14:30:00"
place = "Bengaluru"
timezone = "+05:30"
latitude = 12.9716
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile with lone latitude: want error, got nil")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "nope.toml")); err == nil {
			t.Error("LoadFile on missing file: want error, got nil")
		}
	})

	t.Run("invalid field surfaces validation error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		content := `date = "20-08-1995"
time = "14:30:00"
place = "Bengaluru"
timezone = "+05:30"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("LoadFile error = %v, want *ValidationError", err)
		}
	})
}
