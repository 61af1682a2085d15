package rmr

import (
	"fmt"

	"github.com/rockscore/rockscore/pkg/survey"
)

// Parameter is the interface all RMR14 parameter ratings implement.
type Parameter interface {
	// Key returns the machine-readable parameter identifier.
	Key() string
	// Name returns the human-readable parameter name.
	Name() string
	// Evaluate computes the parameter's partial rating for a group of
	// discontinuities.
	Evaluate(in Input) (ParameterResult, error)
}

// Input carries everything a parameter may need. The dictionary is the only
// shared state and is read-only.
type Input struct {
	Unit     string
	Members  []survey.Discontinuity
	RQD      float64
	UCSClass string
	Dict     *Dictionary
}

// Engine runs the configured parameters over a group of discontinuities and
// produces a Score.
type Engine struct {
	params []Parameter
}

// NewEngine creates a scoring engine with the given parameters.
func NewEngine(params ...Parameter) *Engine {
	return &Engine{params: params}
}

// Score evaluates all parameters for one unit (a station or a family) and
// classifies the total. A missing dictionary code or out-of-range total
// aborts this unit only; the returned error names the offending record.
func (e *Engine) Score(unit string, members []survey.Discontinuity, rqd float64, rqdDerived bool, ucsClass string, dict *Dictionary) (*Score, error) {
	if len(members) == 0 {
		return nil, &EmptyInputError{Unit: unit}
	}
	if dict == nil {
		return nil, fmt.Errorf("score %s: nil dictionary", unit)
	}

	in := Input{
		Unit:     unit,
		Members:  members,
		RQD:      rqd,
		UCSClass: ucsClass,
		Dict:     dict,
	}

	score := &Score{
		Unit:       unit,
		RQD:        rqd,
		RQDDerived: rqdDerived,
	}

	for _, p := range e.params {
		pr, err := p.Evaluate(in)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", unit, err)
		}
		score.Ratings = append(score.Ratings, pr)
		score.Total += pr.Rating
	}

	class, err := Classify(score.Total)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", unit, err)
	}
	score.Class = class

	return score, nil
}

// ScoreStation resolves the station's RQD and scores its discontinuities.
func (e *Engine) ScoreStation(st *survey.Station, ucsClass string, dict *Dictionary) (*Score, error) {
	rqd, derived, err := StationRQD(st)
	if err != nil {
		return nil, err
	}
	return e.Score(st.ID, st.Discontinuities, rqd, derived, ucsClass, dict)
}

// ScoreFamily scores a family's members independently of their stations.
// The traverse length is the combined length of the traverses the members
// were recorded on; it feeds the family's RQD estimate.
func (e *Engine) ScoreFamily(f *survey.Family, traverseM float64, ucsClass string, dict *Dictionary) (*Score, error) {
	unit := fmt.Sprintf("family %d", f.ID)
	if len(f.Members) == 0 {
		return nil, &EmptyInputError{Unit: unit}
	}
	if traverseM <= 0 {
		return nil, &InsufficientDataError{Unit: unit, Reason: "no traverse length for member stations"}
	}
	rqd := EstimateRQD(float64(len(f.Members)) / traverseM)
	return e.Score(unit, f.Members, rqd, true, ucsClass, dict)
}
