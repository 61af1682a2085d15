package rmr

import (
	"fmt"
	"strings"

	"github.com/rockscore/rockscore/pkg/survey"
)

// ConditionParameter (P4) rates the condition of discontinuities as the sum
// of five sub-ratings: persistence, aperture, roughness, infill, weathering.
// Each sub-rating is taken from the WORST (lowest-rating) member of the
// group. This is the conservative-design convention of the RMR methodology:
// averaging would change the geomechanical meaning of the score.
type ConditionParameter struct{}

func (p *ConditionParameter) Key() string  { return "condition" }
func (p *ConditionParameter) Name() string { return "Condition of discontinuities" }

func (p *ConditionParameter) Evaluate(in Input) (ParameterResult, error) {
	var total float64
	var details []string

	for _, sub := range conditionParameters {
		worst, err := worstRating(in, sub)
		if err != nil {
			return ParameterResult{}, err
		}
		total += worst
		details = append(details, fmt.Sprintf("%s=%g", sub, worst))
	}

	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: total,
		Detail: "worst-case " + strings.Join(details, " "),
	}, nil
}

// worstRating returns the minimum dictionary rating for one condition
// sub-parameter across all members.
func worstRating(in Input, sub string) (float64, error) {
	worst := 0.0
	for i, d := range in.Members {
		rating, err := in.Dict.Rating(sub, conditionCode(d, sub), d.Row)
		if err != nil {
			return 0, err
		}
		if i == 0 || rating < worst {
			worst = rating
		}
	}
	return worst, nil
}

func conditionCode(d survey.Discontinuity, sub string) int {
	switch sub {
	case "persistence":
		return d.Persistence
	case "aperture":
		return d.Aperture
	case "roughness":
		return d.Roughness
	case "infill":
		return d.Infill
	default:
		return d.Weathering
	}
}
