package cluster

import (
	"math"
	"sort"
	"testing"

	"github.com/rockscore/rockscore/pkg/survey"
)

func rec(row int, dir, dip float64) survey.Discontinuity {
	return survey.Discontinuity{
		Row:          row,
		StationID:    "E1",
		Type:         survey.StructureJoint,
		DipDirection: dir,
		Dip:          dip,
	}
}

func TestClusterSingleFamily(t *testing.T) {
	records := []survey.Discontinuity{
		rec(2, 44, 64),
		rec(3, 46, 66),
		rec(4, 45, 65),
		rec(5, 47, 63),
		rec(6, 43, 67),
		rec(7, 48, 65),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	if len(result.Families) != 1 {
		t.Fatalf("families = %d, want 1", len(result.Families))
	}
	if len(result.Unclustered) != 0 {
		t.Fatalf("unclustered = %d, want 0", len(result.Unclustered))
	}

	fam := result.Families[0]
	if fam.ID != 1 {
		t.Errorf("family ID = %d, want 1", fam.ID)
	}
	if len(fam.Members) != 6 {
		t.Errorf("members = %d, want 6", len(fam.Members))
	}
	if math.Abs(fam.Mean.DipDirection-45.5) > 0.1 {
		t.Errorf("mean dip direction = %g, want ~45.5", fam.Mean.DipDirection)
	}
	if math.Abs(fam.Mean.Dip-65) > 0.1 {
		t.Errorf("mean dip = %g, want ~65", fam.Mean.Dip)
	}
}

func TestClusterTwoFamilies(t *testing.T) {
	records := []survey.Discontinuity{
		rec(2, 44, 64),
		rec(3, 140, 30),
		rec(4, 46, 66),
		rec(5, 142, 32),
		rec(6, 45, 65),
		rec(7, 138, 28),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	if len(result.Families) != 2 {
		t.Fatalf("families = %d, want 2", len(result.Families))
	}

	// Family IDs follow formation order: the set seeded first gets ID 1.
	if result.Families[0].Members[0].Row != 2 {
		t.Errorf("family 1 seeded from row %d, want row 2", result.Families[0].Members[0].Row)
	}
	if result.Families[1].Members[0].Row != 3 {
		t.Errorf("family 2 seeded from row %d, want row 3", result.Families[1].Members[0].Row)
	}
}

func TestClusterOrderInvariantMembership(t *testing.T) {
	// Two well-separated sets: no record is within tolerance of both, so
	// reordering the input must not change which rows end up together.
	records := []survey.Discontinuity{
		rec(2, 44, 64),
		rec(3, 140, 30),
		rec(4, 46, 66),
		rec(5, 142, 32),
		rec(6, 45, 65),
		rec(7, 138, 28),
	}
	reversed := make([]survey.Discontinuity, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	forward := NewEngine(DefaultParams()).Cluster(records)
	backward := NewEngine(DefaultParams()).Cluster(reversed)

	if got, want := familySets(backward), familySets(forward); !equalSets(got, want) {
		t.Errorf("membership changed under reordering:\nforward  %v\nbackward %v", want, got)
	}
}

// familySets reduces a clustering result to its family membership sets,
// each a sorted row list, sorted by first row so IDs do not matter.
func familySets(result *Result) [][]int {
	var sets [][]int
	for _, fam := range result.Families {
		sets = append(sets, rowsOf(fam.Members))
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0] < sets[j][0] })
	return sets
}

func rowsOf(members []survey.Discontinuity) []int {
	rows := make([]int, len(members))
	for i, m := range members {
		rows[i] = m.Row
	}
	sort.Ints(rows)
	return rows
}

func equalSets(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestClusterMinMembersDissolves(t *testing.T) {
	records := []survey.Discontinuity{
		rec(2, 44, 64),
		rec(3, 46, 66),
		rec(4, 45, 65),
		// A pair well away from the first set: below the default minimum of 3.
		rec(5, 200, 10),
		rec(6, 202, 12),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	if len(result.Families) != 1 {
		t.Fatalf("families = %d, want 1", len(result.Families))
	}
	if len(result.Unclustered) != 2 {
		t.Fatalf("unclustered = %d, want 2", len(result.Unclustered))
	}
	if result.Unclustered[0].Row != 5 || result.Unclustered[1].Row != 6 {
		t.Errorf("unclustered rows = %d, %d, want 5, 6",
			result.Unclustered[0].Row, result.Unclustered[1].Row)
	}
}

func TestClusterAcrossSeam(t *testing.T) {
	// Dip directions straddling 0/360 belong together.
	records := []survey.Discontinuity{
		rec(2, 355, 40),
		rec(3, 2, 42),
		rec(4, 358, 41),
		rec(5, 5, 39),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	if len(result.Families) != 1 {
		t.Fatalf("families = %d, want 1", len(result.Families))
	}
	mean := result.Families[0].Mean.DipDirection
	if CircularDistance(mean, 0) > 5 {
		t.Errorf("mean dip direction = %g, want near 0/360", mean)
	}
}

func TestClusterPartition(t *testing.T) {
	records := []survey.Discontinuity{
		rec(2, 44, 64), rec(3, 140, 30), rec(4, 46, 66), rec(5, 310, 80),
		rec(6, 45, 65), rec(7, 142, 32), rec(8, 138, 28), rec(9, 44, 63),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	seen := make(map[int]int)
	for _, fam := range result.Families {
		for _, d := range fam.Members {
			seen[d.Row]++
		}
	}
	for _, d := range result.Unclustered {
		seen[d.Row]++
	}

	if len(seen) != len(records) {
		t.Errorf("partition covers %d records, want %d", len(seen), len(records))
	}
	for row, n := range seen {
		if n != 1 {
			t.Errorf("row %d appears %d times, want exactly once", row, n)
		}
	}
}

func TestClusterDeterministic(t *testing.T) {
	records := []survey.Discontinuity{
		rec(2, 44, 64), rec(3, 46, 66), rec(4, 140, 30),
		rec(5, 45, 65), rec(6, 142, 32), rec(7, 138, 28),
	}

	first := NewEngine(DefaultParams()).Cluster(records)
	second := NewEngine(DefaultParams()).Cluster(records)

	if len(first.Families) != len(second.Families) {
		t.Fatalf("family count differs across runs: %d vs %d",
			len(first.Families), len(second.Families))
	}
	for i := range first.Families {
		a, b := first.Families[i], second.Families[i]
		if a.Mean != b.Mean || len(a.Members) != len(b.Members) {
			t.Errorf("family %d differs across runs", i+1)
		}
	}
}

func TestClusterTieBreakFirstFamily(t *testing.T) {
	// A record equidistant from two growing sets joins the one formed first.
	records := []survey.Discontinuity{
		rec(2, 40, 50),
		rec(3, 42, 50),
		rec(4, 41, 50),
		rec(5, 70, 50),
		rec(6, 72, 50),
		rec(7, 71, 50),
		// 55/50 is within tolerance of both means; it joins family 1
		// during family 1's sweep, before family 2 exists.
		rec(8, 55, 50),
	}

	result := NewEngine(DefaultParams()).Cluster(records)

	if len(result.Families) != 2 {
		t.Fatalf("families = %d, want 2", len(result.Families))
	}
	found := false
	for _, d := range result.Families[0].Members {
		if d.Row == 8 {
			found = true
		}
	}
	if !found {
		t.Error("row 8 should join the first family formed")
	}
}

func TestClusterCombinedMetric(t *testing.T) {
	// Near-horizontal planes with scattered dip directions: the pole metric
	// groups them, the two-threshold metric does not.
	records := []survey.Discontinuity{
		rec(2, 10, 3),
		rec(3, 150, 4),
		rec(4, 280, 2),
	}

	two := NewEngine(Params{ToleranceDeg: 15, MinMembers: 3, Metric: MetricTwoThreshold}).Cluster(records)
	if len(two.Families) != 0 {
		t.Errorf("two-threshold families = %d, want 0", len(two.Families))
	}

	combined := NewEngine(Params{ToleranceDeg: 15, MinMembers: 3, Metric: MetricCombined}).Cluster(records)
	if len(combined.Families) != 1 {
		t.Errorf("combined families = %d, want 1", len(combined.Families))
	}
}

func TestClusterEmptyInput(t *testing.T) {
	result := NewEngine(DefaultParams()).Cluster(nil)
	if len(result.Families) != 0 || len(result.Unclustered) != 0 {
		t.Errorf("empty input should produce an empty partition")
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Params{})
	p := e.Params()
	if p.ToleranceDeg != 15 || p.MinMembers != 3 || p.Metric != MetricTwoThreshold {
		t.Errorf("zero params should fall back to defaults, got %+v", p)
	}
}
