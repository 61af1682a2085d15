// Package survey defines the core field-survey data model for rockscore.
// These types are the shared vocabulary across all modules.
package survey

import "math"

// StructureType identifies the kind of structural discontinuity recorded in
// the field. The set is open: field sheets occasionally carry local labels,
// which are kept verbatim.
type StructureType string

const (
	StructureJoint    StructureType = "JOINT"
	StructureFault    StructureType = "FAULT"
	StructureSpalling StructureType = "SPALLING"
	StructureBedding  StructureType = "BEDDING"
	StructureVein     StructureType = "VEIN"
	StructureShear    StructureType = "SHEAR"
)

// Discontinuity is one measured structural feature along a traverse.
// Immutable after validation; consumed by both station aggregation and
// orientation clustering.
type Discontinuity struct {
	Row          int           `json:"row"` // 1-based source row in the input table
	StationID    string        `json:"station_id"`
	DistanceM    float64       `json:"distance_m"`
	Type         StructureType `json:"type"`
	DipDirection float64       `json:"dip_direction"` // degrees, [0,360)
	Dip          float64       `json:"dip"`           // degrees, [0,90]
	Spacing      int           `json:"spacing"`
	Persistence  int           `json:"persistence"`
	Aperture     int           `json:"aperture"`
	Roughness    int           `json:"roughness"`
	Infill       int           `json:"infill"`
	Weathering   int           `json:"weathering"`
	Groundwater  int           `json:"groundwater"`
}

// Orientation is a dip direction / dip pair. Dip direction is circular,
// dip is linear.
type Orientation struct {
	DipDirection float64 `json:"dip_direction"`
	Dip          float64 `json:"dip"`
}

// Orientation returns the discontinuity's dip direction / dip pair.
func (d Discontinuity) Orientation() Orientation {
	return Orientation{DipDirection: d.DipDirection, Dip: d.Dip}
}

// Station is an ordered, non-empty collection of discontinuities sharing a
// survey location.
type Station struct {
	ID              string          `json:"id"`
	Discontinuities []Discontinuity `json:"discontinuities"`
	TraverseM       float64         `json:"traverse_m"` // traverse length, max distance along tape
	DirectRQD       *float64        `json:"direct_rqd,omitempty"`
}

// Survey is an ordered set of stations parsed from one input table.
type Survey struct {
	Stations []*Station `json:"stations"`
}

// Station returns the station with the given ID, or nil.
func (s *Survey) Station(id string) *Station {
	for _, st := range s.Stations {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Records returns every discontinuity across all stations in input order.
func (s *Survey) Records() []Discontinuity {
	var all []Discontinuity
	for _, st := range s.Stations {
		all = append(all, st.Discontinuities...)
	}
	return all
}

// RecordCount returns the total number of discontinuities.
func (s *Survey) RecordCount() int {
	n := 0
	for _, st := range s.Stations {
		n += len(st.Discontinuities)
	}
	return n
}

// Family is a cluster of discontinuities with similar orientation, treated
// as one structural set. Families are mutually exclusive: a discontinuity
// belongs to at most one family.
type Family struct {
	ID           int             `json:"id"` // 1-based, in formation order
	Mean         Orientation     `json:"mean"`
	Members      []Discontinuity `json:"members"`
	ToleranceDeg float64         `json:"tolerance_deg"`
}

// dipEpsilon absorbs float rounding at the physical dip bounds. Anything
// further out is a measurement error, not noise.
const dipEpsilon = 1e-6

// NormalizeDipDirection wraps an azimuth into [0,360).
func NormalizeDipDirection(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeDip clamps float noise at the [0,90] bounds and reports whether
// the value lies within physical range.
func NormalizeDip(deg float64) (float64, bool) {
	if deg < 0 {
		if deg >= -dipEpsilon {
			return 0, true
		}
		return deg, false
	}
	if deg > 90 {
		if deg <= 90+dipEpsilon {
			return 90, true
		}
		return deg, false
	}
	return deg, true
}
