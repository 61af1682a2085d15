package survey

import "fmt"

// InvalidRangeError reports a value outside its physical or methodological
// bounds. It is surfaced, never silently clamped away.
type InvalidRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
	Row   int // 0 when the value is not tied to an input row
}

func (e *InvalidRangeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s %g outside [%g,%g] (row %d)", e.Field, e.Value, e.Min, e.Max, e.Row)
	}
	return fmt.Sprintf("%s %g outside [%g,%g]", e.Field, e.Value, e.Min, e.Max)
}

// RowError ties a validation failure to its source row. Row errors are
// collected during parsing so one bad record does not abort the rest of
// the table.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
