package rmr

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rockscore/rockscore/pkg/survey"
)

func loadFixture(t *testing.T) (*survey.Survey, *Dictionary) {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", "station_cerros.csv"))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	svy, problems, err := survey.ReadCSV(f)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("fixture has %d invalid rows: %v", len(problems), problems[0])
	}

	dict, err := LoadDictionary(filepath.Join("testdata", "codes.yaml"))
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	return svy, dict
}

func TestScoreStationWorkedExample(t *testing.T) {
	svy, dict := loadFixture(t)
	st := svy.Station("E1")
	if st == nil {
		t.Fatal("fixture station E1 not found")
	}

	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)
	score, err := engine.ScoreStation(st, "R4", dict)
	if err != nil {
		t.Fatalf("ScoreStation: %v", err)
	}

	// strength 12 + rqd 17 + spacing 10 + condition 19.1 + groundwater 10 - 5
	if math.Abs(score.Total-63.1) > 1e-9 {
		t.Errorf("total = %g, want 63.1", score.Total)
	}
	if score.Class.Label != "Class II" {
		t.Errorf("class = %s, want Class II", score.Class.Label)
	}
	if score.RQD != 78.2 {
		t.Errorf("rqd = %g, want direct 78.2", score.RQD)
	}
	if score.RQDDerived {
		t.Error("fixture carries a direct RQD; derived flag should be false")
	}

	wantRatings := map[string]float64{
		"strength":    12,
		"rqd":         17,
		"spacing":     10,
		"condition":   19.1,
		"groundwater": 10,
		"orientation": -5,
	}
	for key, want := range wantRatings {
		got, ok := score.Rating(key)
		if !ok {
			t.Errorf("missing %s rating", key)
			continue
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %g, want %g", key, got, want)
		}
	}
}

func TestScoreParameterOrder(t *testing.T) {
	svy, dict := loadFixture(t)
	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)

	score, err := engine.ScoreStation(svy.Station("E1"), "R4", dict)
	if err != nil {
		t.Fatalf("ScoreStation: %v", err)
	}

	want := []string{"strength", "rqd", "spacing", "condition", "groundwater", "orientation"}
	if len(score.Ratings) != len(want) {
		t.Fatalf("got %d ratings, want %d", len(score.Ratings), len(want))
	}
	for i, key := range want {
		if score.Ratings[i].Key != key {
			t.Errorf("rating %d = %s, want %s", i, score.Ratings[i].Key, key)
		}
	}
}

func TestScoreEmptyInput(t *testing.T) {
	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)

	_, err := engine.Score("E9", nil, 80, false, "R4", DefaultDictionary())
	if err == nil {
		t.Fatal("expected error for empty member list")
	}
	var empty *EmptyInputError
	if !errors.As(err, &empty) {
		t.Errorf("error %v is not an EmptyInputError", err)
	}
}

func TestScoreUnknownCodeNamesRow(t *testing.T) {
	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)
	members := []survey.Discontinuity{
		{Row: 2, Spacing: 4, Persistence: 1, Aperture: 1, Roughness: 1, Infill: 1, Weathering: 1, Groundwater: 2},
		{Row: 3, Spacing: 7, Persistence: 1, Aperture: 1, Roughness: 1, Infill: 1, Weathering: 1, Groundwater: 2},
	}

	_, err := engine.Score("E1", members, 80, false, "R4", DefaultDictionary())
	if err == nil {
		t.Fatal("expected error for unknown spacing code")
	}
	var unknown *UnknownCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %v is not an UnknownCodeError", err)
	}
	if unknown.Row != 3 {
		t.Errorf("error row = %d, want 3", unknown.Row)
	}
}

func TestScoreFamily(t *testing.T) {
	svy, dict := loadFixture(t)
	st := svy.Station("E1")

	// Restrict to the near-45/65 joints.
	fam := &survey.Family{ID: 1, Mean: survey.Orientation{DipDirection: 45, Dip: 65}}
	for _, d := range st.Discontinuities {
		if d.Type == survey.StructureJoint {
			fam.Members = append(fam.Members, d)
		}
	}

	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)
	score, err := engine.ScoreFamily(fam, st.TraverseM, "R4", dict)
	if err != nil {
		t.Fatalf("ScoreFamily: %v", err)
	}

	if score.Unit != "family 1" {
		t.Errorf("unit = %q, want %q", score.Unit, "family 1")
	}
	if !score.RQDDerived {
		t.Error("family RQD is always derived from member frequency")
	}

	// 9 joints over a 4.8 m traverse.
	wantRQD := EstimateRQD(9 / 4.8)
	if math.Abs(score.RQD-wantRQD) > 1e-9 {
		t.Errorf("family rqd = %g, want %g", score.RQD, wantRQD)
	}
}

func TestScoreFamilyNoTraverse(t *testing.T) {
	engine := NewEngine(DefaultParameters(DefaultOrientationPenalty)...)
	fam := &survey.Family{ID: 1, Members: []survey.Discontinuity{{Row: 2}}}

	_, err := engine.ScoreFamily(fam, 0, "R4", DefaultDictionary())
	if err == nil {
		t.Fatal("expected error for zero traverse")
	}
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Errorf("error %v is not an InsufficientDataError", err)
	}
}

func TestScoreOrientationPenaltyConfigurable(t *testing.T) {
	svy, dict := loadFixture(t)
	st := svy.Station("E1")

	base := NewEngine(DefaultParameters(-5)...)
	harsh := NewEngine(DefaultParameters(-12)...)

	a, err := base.ScoreStation(st, "R4", dict)
	if err != nil {
		t.Fatalf("ScoreStation: %v", err)
	}
	b, err := harsh.ScoreStation(st, "R4", dict)
	if err != nil {
		t.Fatalf("ScoreStation: %v", err)
	}

	if math.Abs((a.Total-b.Total)-7) > 1e-9 {
		t.Errorf("penalty difference = %g, want 7", a.Total-b.Total)
	}
}
