package rmr

import "fmt"

// OrientationParameter (P6) applies the discontinuity orientation
// adjustment: a fixed penalty configured per analysis run, not derived from
// geometry. The default of -5 corresponds to "unfavorable".
type OrientationParameter struct {
	Penalty float64
}

func (p *OrientationParameter) Key() string  { return "orientation" }
func (p *OrientationParameter) Name() string { return "Orientation adjustment" }

func (p *OrientationParameter) Evaluate(in Input) (ParameterResult, error) {
	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: p.Penalty,
		Detail: fmt.Sprintf("fixed adjustment %g", p.Penalty),
	}, nil
}
