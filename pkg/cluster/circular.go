// Package cluster groups discontinuities into orientation families using a
// circular angular-distance metric and greedy first-fit agglomeration.
package cluster

import (
	"math"

	"github.com/rockscore/rockscore/pkg/survey"
)

// CircularDistance returns the angular distance in degrees between two dip
// directions, wrapping correctly at the 0/360 seam:
// CircularDistance(359, 1) == 2.
func CircularDistance(a, b float64) float64 {
	d := math.Abs(survey.NormalizeDipDirection(a) - survey.NormalizeDipDirection(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// CircularMean returns the mean of a set of dip directions in [0,360),
// computed by unit-vector averaging. Arithmetic averaging of raw degrees
// cancels near the seam (359 and 1 would average to 180 instead of 0).
func CircularMean(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	var sinSum, cosSum float64
	for _, deg := range degrees {
		rad := deg * math.Pi / 180
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	return survey.NormalizeDipDirection(math.Atan2(sinSum, cosSum) * 180 / math.Pi)
}

// PoleAngle returns the great-circle angle in degrees between the poles of
// two planes given as (dip direction, dip) pairs. Used by the combined
// admission metric.
func PoleAngle(a, b survey.Orientation) float64 {
	av := poleVector(a)
	bv := poleVector(b)
	dot := av[0]*bv[0] + av[1]*bv[1] + av[2]*bv[2]
	// Guard acos against float drift just outside [-1,1].
	dot = math.Max(-1, math.Min(1, dot))
	return math.Acos(dot) * 180 / math.Pi
}

// poleVector converts a plane orientation to the unit normal of the plane:
// x east, y north, z up.
func poleVector(o survey.Orientation) [3]float64 {
	dir := o.DipDirection * math.Pi / 180
	dip := o.Dip * math.Pi / 180
	return [3]float64{
		math.Sin(dip) * math.Sin(dir),
		math.Sin(dip) * math.Cos(dir),
		math.Cos(dip),
	}
}
