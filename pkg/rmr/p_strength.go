package rmr

import "fmt"

// StrengthParameter (P1) rates intact rock strength from the station's
// fixed UCS class. It is not derived from the discontinuities themselves.
type StrengthParameter struct{}

func (p *StrengthParameter) Key() string  { return "strength" }
func (p *StrengthParameter) Name() string { return "Intact rock strength" }

func (p *StrengthParameter) Evaluate(in Input) (ParameterResult, error) {
	rating, err := in.Dict.StrengthRating(in.UCSClass)
	if err != nil {
		return ParameterResult{}, err
	}
	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: rating,
		Detail: fmt.Sprintf("UCS class %s", in.UCSClass),
	}, nil
}
