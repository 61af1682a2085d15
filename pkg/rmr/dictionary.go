package rmr

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Condition sub-parameters rated through the dictionary, in reporting order.
var conditionParameters = []string{
	"persistence", "aperture", "roughness", "infill", "weathering",
}

// Dictionary maps field-recorded categorical codes to numeric ratings.
// It is loaded once and read-only for the rest of the process; callers
// pass it explicitly rather than reaching for global state.
type Dictionary struct {
	// Ratings maps parameter name -> code -> rating. Covers the five
	// condition sub-parameters plus groundwater.
	Ratings map[string]map[int]float64 `yaml:"ratings" json:"ratings"`
	// SpacingMM maps a spacing code to its representative spacing in mm.
	SpacingMM map[int]float64 `yaml:"spacing_mm" json:"spacing_mm"`
	// Strength maps a UCS class (R0..R6) to its fixed strength rating.
	Strength map[string]float64 `yaml:"ucs" json:"ucs"`
}

// Rating converts one categorical code to its numeric rating. Missing
// entries return an UnknownCodeError naming the parameter, code, and
// source row; they are never defaulted.
func (d *Dictionary) Rating(parameter string, code, row int) (float64, error) {
	table, ok := d.Ratings[parameter]
	if !ok {
		return 0, &UnknownCodeError{Parameter: parameter, Code: strconv.Itoa(code), Row: row}
	}
	rating, ok := table[code]
	if !ok {
		return 0, &UnknownCodeError{Parameter: parameter, Code: strconv.Itoa(code), Row: row}
	}
	return rating, nil
}

// SpacingMillimeters converts a spacing code to its representative spacing.
func (d *Dictionary) SpacingMillimeters(code, row int) (float64, error) {
	mm, ok := d.SpacingMM[code]
	if !ok {
		return 0, &UnknownCodeError{Parameter: "spacing", Code: strconv.Itoa(code), Row: row}
	}
	return mm, nil
}

// StrengthRating looks up the fixed rating for a UCS class.
func (d *Dictionary) StrengthRating(ucsClass string) (float64, error) {
	rating, ok := d.Strength[ucsClass]
	if !ok {
		return 0, &UnknownCodeError{Parameter: "ucs", Code: ucsClass}
	}
	return rating, nil
}

// validate checks that every table the engine depends on is present.
func (d *Dictionary) validate() error {
	for _, p := range append(append([]string{}, conditionParameters...), "groundwater") {
		if len(d.Ratings[p]) == 0 {
			return fmt.Errorf("dictionary has no %s ratings", p)
		}
	}
	if len(d.SpacingMM) == 0 {
		return fmt.Errorf("dictionary has no spacing conversions")
	}
	if len(d.Strength) == 0 {
		return fmt.Errorf("dictionary has no UCS strength ratings")
	}
	return nil
}

// LoadDictionary reads a code dictionary table from a YAML file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return &d, nil
}
