package cluster

import (
	"math"
	"testing"

	"github.com/rockscore/rockscore/pkg/survey"
)

func TestCircularDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"wraps the seam", 359, 1, 2},
		{"identical", 10, 10, 0},
		{"opposite", 0, 180, 180},
		{"simple", 40, 55, 15},
		{"order independent", 55, 40, 15},
		{"just past opposite", 10, 200, 170},
		{"negative input normalized", -10, 10, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CircularDistance(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("CircularDistance(%g, %g) = %g, want %g", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCircularDistanceSymmetric(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {359, 1}, {123.4, 321.9}, {90, 270}}
	for _, p := range pairs {
		if d1, d2 := CircularDistance(p[0], p[1]), CircularDistance(p[1], p[0]); d1 != d2 {
			t.Errorf("asymmetric: d(%g,%g)=%g, d(%g,%g)=%g", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func TestCircularMean(t *testing.T) {
	tests := []struct {
		name    string
		degrees []float64
		want    float64
	}{
		{"single value", []float64{42}, 42},
		{"plain average", []float64{40, 50}, 45},
		{"across the seam", []float64{359, 1}, 0},
		{"seam cluster", []float64{350, 355, 0, 5, 10}, 0},
		{"empty", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CircularMean(tc.degrees)
			// The mean may come out as 360-epsilon on the seam; compare circularly.
			if CircularDistance(got, tc.want) > 1e-9 {
				t.Errorf("CircularMean(%v) = %g, want %g", tc.degrees, got, tc.want)
			}
		})
	}
}

func TestPoleAngle(t *testing.T) {
	// Identical planes have zero pole separation.
	a := survey.Orientation{DipDirection: 120, Dip: 45}
	if got := PoleAngle(a, a); math.Abs(got) > 1e-9 {
		t.Errorf("PoleAngle(a, a) = %g, want 0", got)
	}

	// Two vertical planes 90 degrees apart in dip direction have poles
	// 90 degrees apart.
	v1 := survey.Orientation{DipDirection: 0, Dip: 90}
	v2 := survey.Orientation{DipDirection: 90, Dip: 90}
	if got := PoleAngle(v1, v2); math.Abs(got-90) > 1e-9 {
		t.Errorf("PoleAngle(vertical 0, vertical 90) = %g, want 90", got)
	}

	// Horizontal planes share the vertical pole regardless of dip direction.
	h1 := survey.Orientation{DipDirection: 30, Dip: 0}
	h2 := survey.Orientation{DipDirection: 210, Dip: 0}
	if got := PoleAngle(h1, h2); math.Abs(got) > 1e-9 {
		t.Errorf("PoleAngle(horizontal, horizontal) = %g, want 0", got)
	}

	// Dip-only difference equals the dip delta.
	d1 := survey.Orientation{DipDirection: 45, Dip: 30}
	d2 := survey.Orientation{DipDirection: 45, Dip: 50}
	if got := PoleAngle(d1, d2); math.Abs(got-20) > 1e-9 {
		t.Errorf("PoleAngle(30 dip, 50 dip) = %g, want 20", got)
	}
}
