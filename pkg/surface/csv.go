package surface

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rockscore/rockscore/pkg/analysis"
	"github.com/rockscore/rockscore/pkg/rmr"
)

// CSVRenderer writes the report as flat tabular rows for downstream export.
// Station and family rows share one schema; the kind column tells them
// apart, and unclustered records appear with kind "unclustered".
type CSVRenderer struct{}

var csvHeader = []string{
	"kind", "id", "records", "rqd", "strength", "rqd_rating", "spacing",
	"condition", "groundwater", "orientation", "total", "class",
	"dip_direction", "dip", "error",
}

func (r *CSVRenderer) Render(w io.Writer, report *analysis.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, st := range report.Stations {
		row := scoreRow("station", st.StationID, st.Records, st.Score, st.Error)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing station row: %w", err)
		}
	}

	for _, fam := range report.Families {
		row := scoreRow("family", fmt.Sprintf("F%d", fam.FamilyID), fam.Members, fam.Score, fam.Error)
		row[12] = formatFloat(fam.Mean.DipDirection)
		row[13] = formatFloat(fam.Mean.Dip)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing family row: %w", err)
		}
	}

	for _, u := range report.Unclustered {
		row := emptyRow("unclustered", "row "+strconv.Itoa(u.Row))
		row[2] = "1"
		row[12] = formatFloat(u.DipDirection)
		row[13] = formatFloat(u.Dip)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing unclustered row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func scoreRow(kind, id string, records int, score *rmr.Score, errMsg string) []string {
	row := emptyRow(kind, id)
	row[2] = strconv.Itoa(records)
	row[14] = errMsg
	if score == nil {
		return row
	}
	row[3] = formatFloat(score.RQD)
	for i, key := range []string{"strength", "rqd", "spacing", "condition", "groundwater", "orientation"} {
		if v, ok := score.Rating(key); ok {
			row[4+i] = formatFloat(v)
		}
	}
	row[10] = formatFloat(score.Total)
	row[11] = score.Class.String()
	return row
}

func emptyRow(kind, id string) []string {
	row := make([]string, len(csvHeader))
	row[0] = kind
	row[1] = id
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
