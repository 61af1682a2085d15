package cluster

import (
	"math"

	"github.com/rockscore/rockscore/pkg/survey"
)

// Metric selects how admission to a cluster is judged.
type Metric string

const (
	// MetricTwoThreshold admits an orientation when both its circular
	// dip-direction distance and its linear dip distance to the cluster
	// mean are within tolerance. This is the default rule.
	MetricTwoThreshold Metric = "two-threshold"
	// MetricCombined admits on the great-circle angle between plane poles.
	MetricCombined Metric = "combined"
)

// Params holds the clustering parameters.
type Params struct {
	ToleranceDeg float64 `json:"tolerance_deg" yaml:"tolerance_deg"`
	MinMembers   int     `json:"min_members" yaml:"min_members"`
	Metric       Metric  `json:"metric" yaml:"metric"`
}

// DefaultParams returns the standard clustering parameters.
func DefaultParams() Params {
	return Params{ToleranceDeg: 15, MinMembers: 3, Metric: MetricTwoThreshold}
}

// Result partitions the input: every discontinuity appears in exactly one
// family or in Unclustered, never both.
type Result struct {
	Families    []*survey.Family       `json:"families"`
	Unclustered []survey.Discontinuity `json:"unclustered"`
}

// Engine groups discontinuities into orientation families.
type Engine struct {
	params Params
}

// NewEngine creates a clustering engine. Zero-valued parameters fall back
// to the defaults.
func NewEngine(p Params) *Engine {
	def := DefaultParams()
	if p.ToleranceDeg <= 0 {
		p.ToleranceDeg = def.ToleranceDeg
	}
	if p.MinMembers <= 0 {
		p.MinMembers = def.MinMembers
	}
	if p.Metric == "" {
		p.Metric = def.Metric
	}
	return &Engine{params: p}
}

// Params returns the engine's effective parameters.
func (e *Engine) Params() Params { return e.params }

// cluster accumulates members and maintains the running mean. The dip
// direction mean is recomputed circularly after every admission.
type cluster struct {
	members []int // indices into the input slice, admission order
	dirs    []float64
	dipSum  float64
	mean    survey.Orientation
}

func (c *cluster) admit(i int, o survey.Orientation) {
	c.members = append(c.members, i)
	c.dirs = append(c.dirs, o.DipDirection)
	c.dipSum += o.Dip
	c.mean = survey.Orientation{
		DipDirection: CircularMean(c.dirs),
		Dip:          c.dipSum / float64(len(c.members)),
	}
}

// Cluster partitions the records into families. The algorithm is greedy and
// deterministic for a fixed input order: the first unassigned record seeds a
// cluster, then the remaining unassigned records are swept in input order,
// admitting any within tolerance of the cluster's CURRENT mean and
// recomputing the mean after each admission; sweeps repeat until one admits
// nothing. The next unassigned record seeds the next cluster. Clusters that
// end below the minimum membership dissolve into the unclustered list.
func (e *Engine) Cluster(records []survey.Discontinuity) *Result {
	n := len(records)
	assigned := make([]bool, n)
	var clusters []*cluster

	for seed := 0; seed < n; seed++ {
		if assigned[seed] {
			continue
		}
		c := &cluster{}
		c.admit(seed, records[seed].Orientation())
		assigned[seed] = true

		for changed := true; changed; {
			changed = false
			for j := 0; j < n; j++ {
				if assigned[j] {
					continue
				}
				if e.joinable(c.mean, records[j].Orientation()) {
					c.admit(j, records[j].Orientation())
					assigned[j] = true
					changed = true
				}
			}
		}
		clusters = append(clusters, c)
	}

	result := &Result{}
	for _, c := range clusters {
		if len(c.members) < e.params.MinMembers {
			for _, i := range c.members {
				result.Unclustered = append(result.Unclustered, records[i])
			}
			continue
		}
		fam := &survey.Family{
			ID:           len(result.Families) + 1,
			Mean:         c.mean,
			ToleranceDeg: e.params.ToleranceDeg,
		}
		for _, i := range c.members {
			fam.Members = append(fam.Members, records[i])
		}
		result.Families = append(result.Families, fam)
	}

	// Keep the unclustered list in input order regardless of which cluster
	// a record transited through.
	sortByRow(result.Unclustered)

	return result
}

func (e *Engine) joinable(mean, o survey.Orientation) bool {
	if e.params.Metric == MetricCombined {
		return PoleAngle(mean, o) <= e.params.ToleranceDeg
	}
	return CircularDistance(mean.DipDirection, o.DipDirection) <= e.params.ToleranceDeg &&
		math.Abs(mean.Dip-o.Dip) <= e.params.ToleranceDeg
}

func sortByRow(ds []survey.Discontinuity) {
	// Insertion sort: unclustered lists are short and usually near-ordered.
	for i := 1; i < len(ds); i++ {
		for j := i; j > 0 && ds[j].Row < ds[j-1].Row; j-- {
			ds[j], ds[j-1] = ds[j-1], ds[j]
		}
	}
}
