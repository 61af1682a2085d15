package rmr

import "fmt"

// RQDParameter (P2) rates rock quality designation through the fixed RMR14
// bands.
type RQDParameter struct{}

func (p *RQDParameter) Key() string  { return "rqd" }
func (p *RQDParameter) Name() string { return "Rock quality designation" }

func (p *RQDParameter) Evaluate(in Input) (ParameterResult, error) {
	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: rqdRating(in.RQD),
		Detail: fmt.Sprintf("RQD %.1f%%", in.RQD),
	}, nil
}

func rqdRating(rqd float64) float64 {
	switch {
	case rqd >= 90:
		return 20
	case rqd >= 75:
		return 17
	case rqd >= 50:
		return 13
	case rqd >= 25:
		return 8
	default:
		return 3
	}
}
