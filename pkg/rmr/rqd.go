package rmr

import (
	"math"

	"github.com/rockscore/rockscore/pkg/survey"
)

// EstimateRQD derives a Rock Quality Designation percentage from a
// discontinuity frequency (discontinuities per meter of traverse) via the
// exponential relation RQD = 100 * e^(-0.1λ) * (0.1λ + 1), clamped to [0,100].
func EstimateRQD(frequency float64) float64 {
	rqd := 100 * math.Exp(-0.1*frequency) * (0.1*frequency + 1)
	return clampPercent(rqd)
}

// StationRQD resolves a station's RQD: a directly measured value is used
// verbatim (clamped), otherwise it is estimated from the discontinuity
// count and traverse length. The second return reports whether the value
// was derived.
func StationRQD(st *survey.Station) (float64, bool, error) {
	if st.DirectRQD != nil {
		return clampPercent(*st.DirectRQD), false, nil
	}
	if len(st.Discontinuities) == 0 {
		return 0, false, &InsufficientDataError{Unit: st.ID, Reason: "no discontinuities and no direct RQD"}
	}
	if st.TraverseM <= 0 {
		return 0, false, &InsufficientDataError{Unit: st.ID, Reason: "traverse length is zero and no direct RQD"}
	}
	freq := float64(len(st.Discontinuities)) / st.TraverseM
	return EstimateRQD(freq), true, nil
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
