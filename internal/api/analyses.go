package api

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rockscore/rockscore/internal/report"
	"github.com/rockscore/rockscore/pkg/analysis"
	"github.com/rockscore/rockscore/pkg/cluster"
)

// analyzeRequest is the JSON body for POST /api/v1/analyses.
type analyzeRequest struct {
	Project     string `json:"project"`
	DatasetName string `json:"dataset_name"`
	CSV         string `json:"csv"`
	UCSClass    string `json:"ucs_class"`
	// Pointer so an explicit 0 is distinguishable from an absent field.
	OrientationPenalty *float64 `json:"orientation_penalty"`
	ToleranceDeg       float64  `json:"tolerance_deg"`
	MinMembers         int      `json:"min_members"`
	Metric             string   `json:"metric"`
}

type analyzeResponse struct {
	ReportID  string           `json:"report_id"`
	DatasetID string           `json:"dataset_id"`
	ProjectID string           `json:"project_id"`
	Summary   analysis.Summary `json:"summary"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Support gzip-compressed request bodies
	var body io.Reader = r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid gzip body: "+err.Error())
			return
		}
		defer gz.Close()
		body = gz
	}

	var req analyzeRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Project == "" || req.CSV == "" {
		writeError(w, http.StatusBadRequest, "project and csv are required")
		return
	}
	if req.DatasetName == "" {
		req.DatasetName = "upload.csv"
	}

	result, err := h.reportSvc.Process(r.Context(), report.AnalyzeRequest{
		ProjectName: req.Project,
		DatasetName: req.DatasetName,
		CSV:         []byte(req.CSV),
		Options: analysis.Options{
			UCSClass:           req.UCSClass,
			OrientationPenalty: req.OrientationPenalty,
			Clustering: cluster.Params{
				ToleranceDeg: req.ToleranceDeg,
				MinMembers:   req.MinMembers,
				Metric:       cluster.Metric(req.Metric),
			},
		},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}

	h.cache.Put(result.Report.ID, result.Report)

	writeJSON(w, http.StatusOK, analyzeResponse{
		ReportID:  result.Report.ID,
		DatasetID: result.Dataset.ID,
		ProjectID: result.Row.ProjectID,
		Summary:   result.Report.Summary,
	})
}
