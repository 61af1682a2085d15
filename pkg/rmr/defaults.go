package rmr

// DefaultOrientationPenalty is the adjustment for unfavorable discontinuity
// orientation applied when no project-specific value is configured.
const DefaultOrientationPenalty = -5

// DefaultDictionary returns the standard code dictionary used when a project
// does not supply its own table. Condition sub-ratings follow the RMR14
// tables; groundwater ratings and spacing conversions follow the Cerros
// survey convention (codes 1..5, best to worst).
func DefaultDictionary() *Dictionary {
	return &Dictionary{
		Ratings: map[string]map[int]float64{
			"persistence": {1: 6, 2: 4, 3: 2, 4: 1, 5: 0},
			"aperture":    {1: 6, 2: 5, 3: 4, 4: 1, 5: 0},
			"roughness":   {1: 6, 2: 5, 3: 3, 4: 1, 5: 0},
			"infill":      {1: 6, 2: 4, 3: 2, 4: 1, 5: 0},
			"weathering":  {1: 6, 2: 5, 3: 3, 4: 1, 5: 0},
			"groundwater": {1: 15, 2: 10, 3: 7, 4: 4, 5: 0},
		},
		SpacingMM: map[int]float64{1: 10, 2: 40, 3: 130, 4: 400, 5: 800},
		Strength: map[string]float64{
			"R0": 0, "R1": 1, "R2": 2, "R3": 7, "R4": 12, "R5": 15, "R6": 15,
		},
	}
}

// DefaultParameters returns the six RMR14 parameters in reporting order.
func DefaultParameters(orientationPenalty float64) []Parameter {
	return []Parameter{
		&StrengthParameter{},
		&RQDParameter{},
		&SpacingParameter{},
		&ConditionParameter{},
		&GroundwaterParameter{},
		&OrientationParameter{Penalty: orientationPenalty},
	}
}
