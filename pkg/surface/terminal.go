package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/rockscore/rockscore/pkg/analysis"
	"github.com/rockscore/rockscore/pkg/rmr"
)

// TerminalRenderer renders a report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func classColor(label string) string {
	if noColor() {
		return ""
	}
	switch label {
	case "Class I", "Class II":
		return colorGreen
	case "Class III":
		return colorYellow
	case "Class IV", "Class V":
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, report *analysis.Report) error {
	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("RMR14 analysis — %d stations, %d records",
		report.Summary.Stations, report.Summary.Records)))

	fmt.Fprintln(w, "Stations:")
	for _, st := range report.Stations {
		if st.Score == nil {
			fmt.Fprintf(w, "  %s — %s\n", bold(st.StationID), colored(st.Error, colorRed))
			continue
		}
		label := st.Score.Class.String()
		fmt.Fprintf(w, "  %s — RMR %.1f %s\n",
			bold(st.StationID), st.Score.Total,
			colored(label, classColor(st.Score.Class.Label)))
		fmt.Fprintf(w, "         %s\n", dim(ratingLine(st.Score)))
	}
	fmt.Fprintln(w)

	if len(report.Families) > 0 {
		fmt.Fprintln(w, "Families:")
		for _, fam := range report.Families {
			fmt.Fprintf(w, "  %s — %d members, mean %03.0f°/%02.0f°",
				bold(fmt.Sprintf("F%d", fam.FamilyID)), fam.Members,
				fam.Mean.DipDirection, fam.Mean.Dip)
			if fam.Score != nil {
				fmt.Fprintf(w, ", RMR %.1f %s", fam.Score.Total,
					colored(fam.Score.Class.String(), classColor(fam.Score.Class.Label)))
			} else if fam.Error != "" {
				fmt.Fprintf(w, ", %s", colored(fam.Error, colorRed))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if len(report.Unclustered) > 0 {
		fmt.Fprintf(w, "Unclustered: %d records\n", len(report.Unclustered))
		for _, u := range report.Unclustered {
			fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("row %d (%s) %03.0f°/%02.0f°",
				u.Row, u.StationID, u.DipDirection, u.Dip)))
		}
		fmt.Fprintln(w)
	}

	if len(report.Problems) > 0 {
		fmt.Fprintf(w, "%s\n", colored(fmt.Sprintf("Rejected rows: %d", len(report.Problems)), colorYellow))
		for _, p := range report.Problems {
			fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("row %d: %s", p.Row, p.Message)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Mean RMR %.1f — dominant %s\n", report.Summary.MeanRMR, report.Summary.DominantClass)
	return nil
}

func ratingLine(score *rmr.Score) string {
	s := ""
	for i, pr := range score.Ratings {
		if i > 0 {
			s += "  "
		}
		s += fmt.Sprintf("%s %g", pr.Key, pr.Rating)
	}
	return s
}
