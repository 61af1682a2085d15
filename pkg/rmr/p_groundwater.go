package rmr

import "fmt"

// GroundwaterParameter (P5) rates groundwater conditions from the dominant
// (most frequent) groundwater code among the members. Frequency ties break
// toward the lowest code so the result does not depend on map iteration
// order.
type GroundwaterParameter struct{}

func (p *GroundwaterParameter) Key() string  { return "groundwater" }
func (p *GroundwaterParameter) Name() string { return "Groundwater" }

func (p *GroundwaterParameter) Evaluate(in Input) (ParameterResult, error) {
	counts := make(map[int]int)
	rows := make(map[int]int) // first row observed per code, for error context
	for _, d := range in.Members {
		counts[d.Groundwater]++
		if _, ok := rows[d.Groundwater]; !ok {
			rows[d.Groundwater] = d.Row
		}
	}

	dominant, best := 0, -1
	for code, n := range counts {
		if n > best || (n == best && code < dominant) {
			dominant, best = code, n
		}
	}

	rating, err := in.Dict.Rating("groundwater", dominant, rows[dominant])
	if err != nil {
		return ParameterResult{}, err
	}

	return ParameterResult{
		Key:    p.Key(),
		Name:   p.Name(),
		Rating: rating,
		Detail: fmt.Sprintf("dominant code %d (%d of %d)", dominant, best, len(in.Members)),
	}, nil
}
