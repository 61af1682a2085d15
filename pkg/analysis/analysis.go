package analysis

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/rockscore/rockscore/pkg/cluster"
	"github.com/rockscore/rockscore/pkg/rmr"
	"github.com/rockscore/rockscore/pkg/survey"
)

// Options configures one analysis run. Zero values fall back to defaults.
// OrientationPenalty is a pointer because zero is a meaningful adjustment
// (very favorable orientation); nil selects the default.
type Options struct {
	UCSClass           string
	OrientationPenalty *float64
	Clustering         cluster.Params
	Dictionary         *rmr.Dictionary
}

func (o Options) withDefaults() Options {
	if o.UCSClass == "" {
		o.UCSClass = "R4"
	}
	if o.OrientationPenalty == nil {
		p := float64(rmr.DefaultOrientationPenalty)
		o.OrientationPenalty = &p
	}
	if o.Dictionary == nil {
		o.Dictionary = rmr.DefaultDictionary()
	}
	return o
}

// Run computes the full report for a parsed survey. Row-level problems from
// parsing are carried into the report; a failing station or family aborts
// only its own unit and is reported alongside the successful ones.
func Run(svy *survey.Survey, problems []*survey.RowError, opts Options) *Report {
	opts = opts.withDefaults()
	clusterer := cluster.NewEngine(opts.Clustering)
	engine := rmr.NewEngine(rmr.DefaultParameters(*opts.OrientationPenalty)...)

	report := &Report{
		GeneratedAt: time.Now().UTC(),
		UCSClass:    opts.UCSClass,
		Penalty:     *opts.OrientationPenalty,
		Tolerance:   clusterer.Params().ToleranceDeg,
		MinMembers:  clusterer.Params().MinMembers,
		Metric:      string(clusterer.Params().Metric),
	}
	for _, p := range problems {
		report.Problems = append(report.Problems, Problem{Row: p.Row, Message: p.Err.Error()})
	}

	// Records with out-of-dictionary codes are rejected individually; the
	// rest of their station still scores.
	for _, p := range rmr.ScreenSurvey(svy, opts.Dictionary) {
		report.Problems = append(report.Problems, Problem{Row: p.Row, Message: p.Err.Error()})
	}

	// Station-level scores.
	for _, st := range svy.Stations {
		res := StationResult{
			StationID: st.ID,
			Records:   len(st.Discontinuities),
			TraverseM: st.TraverseM,
		}
		score, err := engine.ScoreStation(st, opts.UCSClass, opts.Dictionary)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Score = score
		}
		report.Stations = append(report.Stations, res)
	}

	// Family-level scores over the whole survey.
	clustered := clusterer.Cluster(svy.Records())
	for _, fam := range clustered.Families {
		report.Families = append(report.Families, familyResult(fam, svy, engine, opts))
	}
	for _, d := range clustered.Unclustered {
		report.Unclustered = append(report.Unclustered, Unclustered{
			Row:          d.Row,
			StationID:    d.StationID,
			DipDirection: d.DipDirection,
			Dip:          d.Dip,
		})
	}

	report.Summary = summarize(svy, report)
	return report
}

// familyResult recomputes an independent RMR score restricted to the
// family's members and attaches the per-family statistics.
func familyResult(fam *survey.Family, svy *survey.Survey, engine *rmr.Engine, opts Options) FamilyResult {
	res := FamilyResult{
		FamilyID: fam.ID,
		Mean:     fam.Mean,
		Members:  len(fam.Members),
	}

	dips := make([]float64, 0, len(fam.Members))
	typeCounts := make(map[survey.StructureType]int)
	stationSeen := make(map[string]bool)
	for _, d := range fam.Members {
		dips = append(dips, d.Dip)
		typeCounts[d.Type]++
		if !stationSeen[d.StationID] {
			stationSeen[d.StationID] = true
			res.Stations = append(res.Stations, d.StationID)
		}
	}
	if len(dips) > 1 {
		res.DipStdDev = stat.StdDev(dips, nil)
	}
	res.DominantType = dominantType(fam.Members, typeCounts)

	traverse := 0.0
	for _, id := range res.Stations {
		if st := svy.Station(id); st != nil {
			traverse += st.TraverseM
		}
	}

	score, err := engine.ScoreFamily(fam, traverse, opts.UCSClass, opts.Dictionary)
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Score = score
	}
	return res
}

// dominantType returns the most frequent structure type; ties break toward
// the type seen first among the members.
func dominantType(members []survey.Discontinuity, counts map[survey.StructureType]int) string {
	best, bestN := survey.StructureType(""), 0
	for _, d := range members {
		if n := counts[d.Type]; n > bestN {
			best, bestN = d.Type, n
		}
	}
	return string(best)
}

func summarize(svy *survey.Survey, report *Report) Summary {
	s := Summary{
		Stations:    len(report.Stations),
		Records:     svy.RecordCount(),
		Families:    len(report.Families),
		Unclustered: len(report.Unclustered),
	}

	var totals []float64
	classCounts := make(map[string]int)
	for _, st := range report.Stations {
		if st.Score == nil {
			continue
		}
		totals = append(totals, st.Score.Total)
		classCounts[st.Score.Class.String()]++
	}
	if len(totals) > 0 {
		s.MeanRMR = stat.Mean(totals, nil)
	}

	bestN := 0
	for _, st := range report.Stations {
		if st.Score == nil {
			continue
		}
		label := st.Score.Class.String()
		if classCounts[label] > bestN {
			s.DominantClass, bestN = label, classCounts[label]
		}
	}
	return s
}
