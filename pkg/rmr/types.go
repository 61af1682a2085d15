// Package rmr implements the RMR14 rock mass rating engine: code-to-rating
// conversion, RQD estimation, parameter aggregation, and classification.
package rmr

import "github.com/rockscore/rockscore/pkg/survey"

// Score is the complete RMR14 result for one station or family.
// Immutable once computed.
type Score struct {
	Unit       string            `json:"unit"`
	Ratings    []ParameterResult `json:"ratings"`
	Total      float64           `json:"total"`
	Class      Class             `json:"class"`
	RQD        float64           `json:"rqd"`
	RQDDerived bool              `json:"rqd_derived"` // true when estimated from frequency
}

// Rating returns the partial rating for the given parameter key.
func (s *Score) Rating(key string) (float64, bool) {
	for _, r := range s.Ratings {
		if r.Key == key {
			return r.Rating, true
		}
	}
	return 0, false
}

// ParameterResult is the output of a single RMR14 parameter.
type ParameterResult struct {
	Key    string  `json:"key"`    // machine key: "spacing"
	Name   string  `json:"name"`   // human name: "Discontinuity spacing"
	Rating float64 `json:"rating"` // partial rating contribution
	Detail string  `json:"detail,omitempty"`
}

// Class is a rock mass quality class per the RMR14 bands.
type Class struct {
	Label   string `json:"label"`   // "Class II"
	Quality string `json:"quality"` // "Good"
}

func (c Class) String() string {
	return c.Label + " - " + c.Quality
}

// Classify maps a total RMR14 score to one of the five rock mass classes.
// Bands are closed-open: [81,100] I, [61,81) II, [41,61) III, [21,41) IV,
// [0,21) V. Totals outside [0,100] indicate an upstream computation defect
// and are reported, never clamped.
func Classify(total float64) (Class, error) {
	if total < 0 || total > 100 {
		return Class{}, &survey.InvalidRangeError{Field: "total", Value: total, Min: 0, Max: 100}
	}
	switch {
	case total >= 81:
		return Class{Label: "Class I", Quality: "Very Good"}, nil
	case total >= 61:
		return Class{Label: "Class II", Quality: "Good"}, nil
	case total >= 41:
		return Class{Label: "Class III", Quality: "Fair"}, nil
	case total >= 21:
		return Class{Label: "Class IV", Quality: "Poor"}, nil
	default:
		return Class{Label: "Class V", Quality: "Very Poor"}, nil
	}
}
