package astro

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.45, 123.45},
		{"exactly 360", 360, 0},
		{"over 360", 370, 10},
		{"multiple wraps", 725, 5},
		{"negative", -10, 350},
		{"large negative", -730, 350},
		{"just under 360", 359.999, 359.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Normalize(%v) = %v, outside [0, 360)", tt.in, got)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, d := range []float64{-1000, -360, -0.001, 0, 45, 359.999, 360, 1234.5} {
		once := Normalize(d)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent at %v: %v != %v", d, once, twice)
		}
	}
}

func TestToDMS(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		d, m, s int
	}{
		{"zero", 0, 0, 0, 0},
		{"whole degree", 15, 15, 0, 0},
		{"half degree", 15.5, 15, 30, 0},
		{"with seconds", 12.2575, 12, 15, 27},
		{"truncates at boundary", 29.999999, 29, 59, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m, s := ToDMS(tt.in)
			if d != tt.d || m != tt.m || s != tt.s {
				t.Errorf("ToDMS(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.in, d, m, s, tt.d, tt.m, tt.s)
			}
		})
	}
}
