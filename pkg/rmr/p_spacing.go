package rmr

import "fmt"

// SpacingParameter (P3) rates the average discontinuity spacing. Each
// member's spacing code is converted to its representative spacing in mm,
// the group mean is taken, and the mean is banded.
type SpacingParameter struct{}

func (p *SpacingParameter) Key() string  { return "spacing" }
func (p *SpacingParameter) Name() string { return "Discontinuity spacing" }

func (p *SpacingParameter) Evaluate(in Input) (ParameterResult, error) {
	var sum float64
	for _, d := range in.Members {
		mm, err := in.Dict.SpacingMillimeters(d.Spacing, d.Row)
		if err != nil {
			return ParameterResult{}, err
		}
		sum += mm
	}
	mean := sum / float64(len(in.Members))

	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: spacingRating(mean),
		Detail: fmt.Sprintf("mean spacing %.0f mm", mean),
	}, nil
}

func spacingRating(mm float64) float64 {
	switch {
	case mm >= 2000:
		return 20
	case mm >= 600:
		return 15
	case mm >= 200:
		return 10
	case mm >= 60:
		return 8
	default:
		return 5
	}
}
