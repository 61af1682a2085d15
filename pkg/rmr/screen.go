package rmr

import "github.com/rockscore/rockscore/pkg/survey"

// CheckCodes verifies that every categorical code on the record has a
// dictionary entry. The first missing entry is returned as an
// UnknownCodeError naming the parameter and source row.
func CheckCodes(d survey.Discontinuity, dict *Dictionary) error {
	if _, err := dict.SpacingMillimeters(d.Spacing, d.Row); err != nil {
		return err
	}
	for _, sub := range conditionParameters {
		if _, err := dict.Rating(sub, conditionCode(d, sub), d.Row); err != nil {
			return err
		}
	}
	if _, err := dict.Rating("groundwater", d.Groundwater, d.Row); err != nil {
		return err
	}
	return nil
}

// ScreenSurvey rejects records whose codes have no dictionary entry,
// removing them from their stations and returning one RowError per
// rejection. Stations keep their traverse length; a station left with
// no members fails on its own at scoring time.
func ScreenSurvey(svy *survey.Survey, dict *Dictionary) []*survey.RowError {
	var problems []*survey.RowError
	for _, st := range svy.Stations {
		kept := st.Discontinuities[:0]
		for _, d := range st.Discontinuities {
			if err := CheckCodes(d, dict); err != nil {
				problems = append(problems, &survey.RowError{Row: d.Row, Err: err})
				continue
			}
			kept = append(kept, d)
		}
		st.Discontinuities = kept
	}
	return problems
}
