package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Required input columns. Column order is free; matching is by header name,
// case-insensitive. An optional "rqd" column supplies a directly measured
// RQD percentage for the row's station.
var requiredColumns = []string{
	"station", "distance_m", "type", "dip_direction", "dip",
	"spacing", "persistence", "aperture", "roughness",
	"infill", "weathering", "groundwater",
}

// ReadCSV parses a discontinuity table. Invalid rows are collected as
// RowErrors and skipped; valid rows are grouped into stations in order of
// first appearance. A missing required column fails the whole read.
func ReadCSV(r io.Reader) (*Survey, []*RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}
	rqdCol, hasRQD := cols["rqd"]

	svy := &Survey{}
	stations := make(map[string]*Station)
	var problems []*RowError

	for row := 2; ; row++ { // row 1 is the header
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			problems = append(problems, &RowError{Row: row, Err: err})
			continue
		}

		d, err := parseRecord(record, cols, row)
		if err != nil {
			problems = append(problems, &RowError{Row: row, Err: err})
			continue
		}

		st, ok := stations[d.StationID]
		if !ok {
			st = &Station{ID: d.StationID}
			stations[d.StationID] = st
			svy.Stations = append(svy.Stations, st)
		}
		st.Discontinuities = append(st.Discontinuities, d)
		if d.DistanceM > st.TraverseM {
			st.TraverseM = d.DistanceM
		}

		if hasRQD && st.DirectRQD == nil {
			if raw := strings.TrimSpace(record[rqdCol]); raw != "" {
				rqd, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					problems = append(problems, &RowError{Row: row, Err: fmt.Errorf("parsing rqd: %w", err)})
				} else {
					st.DirectRQD = &rqd
				}
			}
		}
	}

	return svy, problems, nil
}

func parseRecord(record []string, cols map[string]int, row int) (Discontinuity, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	d := Discontinuity{Row: row}

	d.StationID = field("station")
	if d.StationID == "" {
		return d, fmt.Errorf("empty station identifier")
	}

	typ := strings.ToUpper(field("type"))
	if typ == "" {
		return d, fmt.Errorf("empty structure type")
	}
	d.Type = StructureType(typ)

	var err error
	d.DistanceM, err = parseFloat(field("distance_m"), "distance_m")
	if err != nil {
		return d, err
	}
	if d.DistanceM < 0 {
		return d, &InvalidRangeError{Field: "distance_m", Value: d.DistanceM, Min: 0, Max: 1e9, Row: row}
	}

	dipDir, err := parseFloat(field("dip_direction"), "dip_direction")
	if err != nil {
		return d, err
	}
	d.DipDirection = NormalizeDipDirection(dipDir)

	dip, err := parseFloat(field("dip"), "dip")
	if err != nil {
		return d, err
	}
	dip, ok := NormalizeDip(dip)
	if !ok {
		return d, &InvalidRangeError{Field: "dip", Value: dip, Min: 0, Max: 90, Row: row}
	}
	d.Dip = dip

	for _, c := range []struct {
		name string
		dst  *int
	}{
		{"spacing", &d.Spacing},
		{"persistence", &d.Persistence},
		{"aperture", &d.Aperture},
		{"roughness", &d.Roughness},
		{"infill", &d.Infill},
		{"weathering", &d.Weathering},
		{"groundwater", &d.Groundwater},
	} {
		v, err := strconv.Atoi(field(c.name))
		if err != nil {
			return d, fmt.Errorf("parsing %s: %w", c.name, err)
		}
		*c.dst = v
	}

	return d, nil
}

func parseFloat(raw, name string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}
