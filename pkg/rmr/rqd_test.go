package rmr

import (
	"errors"
	"math"
	"testing"

	"github.com/rockscore/rockscore/pkg/survey"
)

func TestEstimateRQD(t *testing.T) {
	tests := []struct {
		frequency float64
		want      float64
	}{
		{0, 100},
		{10, 73.58},
		{20, 40.60},
	}

	for _, tc := range tests {
		got := EstimateRQD(tc.frequency)
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("EstimateRQD(%g) = %.2f, want %.2f", tc.frequency, got, tc.want)
		}
	}
}

func TestEstimateRQDMonotonic(t *testing.T) {
	prev := EstimateRQD(0)
	for freq := 0.5; freq <= 50; freq += 0.5 {
		cur := EstimateRQD(freq)
		if cur > prev {
			t.Fatalf("RQD increased from %.3f to %.3f at frequency %g", prev, cur, freq)
		}
		prev = cur
	}
}

func TestEstimateRQDBounds(t *testing.T) {
	for _, freq := range []float64{0, 1, 10, 100, 1000} {
		got := EstimateRQD(freq)
		if got < 0 || got > 100 {
			t.Errorf("EstimateRQD(%g) = %g outside [0,100]", freq, got)
		}
	}
}

func TestStationRQDDirect(t *testing.T) {
	direct := 78.2
	st := &survey.Station{ID: "E1", DirectRQD: &direct}

	rqd, derived, err := StationRQD(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rqd != 78.2 {
		t.Errorf("rqd = %g, want 78.2", rqd)
	}
	if derived {
		t.Error("direct RQD should not be flagged as derived")
	}
}

func TestStationRQDDirectClamped(t *testing.T) {
	over := 104.5
	st := &survey.Station{ID: "E1", DirectRQD: &over}

	rqd, _, err := StationRQD(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rqd != 100 {
		t.Errorf("rqd = %g, want clamped 100", rqd)
	}
}

func TestStationRQDDerived(t *testing.T) {
	st := &survey.Station{
		ID:        "E1",
		TraverseM: 2,
		Discontinuities: []survey.Discontinuity{
			{Row: 2}, {Row: 3}, {Row: 4}, {Row: 5},
		},
	}

	rqd, derived, err := StationRQD(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Error("estimated RQD should be flagged as derived")
	}
	// frequency 2/m: 100 * e^-0.2 * 1.2
	want := 100 * math.Exp(-0.2) * 1.2
	if math.Abs(rqd-want) > 1e-9 {
		t.Errorf("rqd = %g, want %g", rqd, want)
	}
}

func TestStationRQDInsufficientData(t *testing.T) {
	tests := []struct {
		name string
		st   *survey.Station
	}{
		{"no discontinuities", &survey.Station{ID: "E1", TraverseM: 2}},
		{"zero traverse", &survey.Station{ID: "E1", Discontinuities: []survey.Discontinuity{{Row: 2}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := StationRQD(tc.st)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var insufficient *InsufficientDataError
			if !errors.As(err, &insufficient) {
				t.Errorf("error %v is not an InsufficientDataError", err)
			}
		})
	}
}
