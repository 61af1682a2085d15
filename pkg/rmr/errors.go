package rmr

import "fmt"

// UnknownCodeError reports a field code with no dictionary entry. It is
// fatal for the unit being scored: defaulting the rating would silently
// corrupt the total.
type UnknownCodeError struct {
	Parameter string
	Code      string
	Row       int // 0 when not tied to a single input row
}

func (e *UnknownCodeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("unknown %s code %q (row %d)", e.Parameter, e.Code, e.Row)
	}
	return fmt.Sprintf("unknown %s code %q", e.Parameter, e.Code)
}

// InsufficientDataError reports that RQD could not be derived for a unit:
// no direct measurement and no usable discontinuity frequency.
type InsufficientDataError struct {
	Unit   string
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: %s", e.Unit, e.Reason)
}

// EmptyInputError reports a station or family with zero valid members.
type EmptyInputError struct {
	Unit string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s has no valid members", e.Unit)
}
