// Package analysis runs the full rockscore pipeline over a parsed survey:
// per-station RMR14 scores, orientation family formation, and per-family
// scores with summary statistics.
package analysis

import (
	"time"

	"github.com/rockscore/rockscore/pkg/rmr"
	"github.com/rockscore/rockscore/pkg/survey"
)

// Report is the complete output of one analysis run. Immutable once
// computed; every row is representable as a flat record for export.
type Report struct {
	ID          string          `json:"id,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	UCSClass    string          `json:"ucs_class"`
	Penalty     float64         `json:"orientation_penalty"`
	Tolerance   float64         `json:"tolerance_deg"`
	MinMembers  int             `json:"min_members"`
	Metric      string          `json:"metric"`
	Stations    []StationResult `json:"stations"`
	Families    []FamilyResult  `json:"families"`
	Unclustered []Unclustered   `json:"unclustered"`
	Problems    []Problem       `json:"problems,omitempty"`
	Summary     Summary         `json:"summary"`
}

// StationResult is the station-level outcome. Exactly one of Score and
// Error is set: a station whose score is undefined aborts only itself.
type StationResult struct {
	StationID string     `json:"station_id"`
	Records   int        `json:"records"`
	TraverseM float64    `json:"traverse_m"`
	Score     *rmr.Score `json:"score,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// FamilyResult is the family-level outcome with summary statistics.
type FamilyResult struct {
	FamilyID     int                `json:"family_id"`
	Mean         survey.Orientation `json:"mean"`
	Members      int                `json:"members"`
	DipStdDev    float64            `json:"dip_std_dev"`
	DominantType string             `json:"dominant_type"`
	Stations     []string           `json:"stations"`
	Score        *rmr.Score         `json:"score,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// Unclustered is a discontinuity that reached no family.
type Unclustered struct {
	Row          int     `json:"row"`
	StationID    string  `json:"station_id"`
	DipDirection float64 `json:"dip_direction"`
	Dip          float64 `json:"dip"`
}

// Problem is a per-record validation failure collected during parsing.
type Problem struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary is the survey-wide executive view.
type Summary struct {
	Stations      int     `json:"stations"`
	Records       int     `json:"records"`
	Families      int     `json:"families"`
	Unclustered   int     `json:"unclustered"`
	MeanRMR       float64 `json:"mean_rmr"`
	DominantClass string  `json:"dominant_class"`
}
