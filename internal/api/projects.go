package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type projectResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SiteRef   *string `json:"site_ref,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type reportResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	DatasetID     string          `json:"dataset_id"`
	UCSClass      string          `json:"ucs_class"`
	MeanRMR       float64         `json:"mean_rmr"`
	DominantClass string          `json:"dominant_class"`
	StationCount  int             `json:"station_count"`
	FamilyCount   int             `json:"family_count"`
	Unclustered   int             `json:"unclustered_count"`
	Summary       json.RawMessage `json:"summary"`
	CreatedAt     string          `json:"created_at"`
}

const timeLayout = "2006-01-02T15:04:05Z"

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.ListProjects(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, []projectResponse{})
		return
	}

	result := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, projectResponse{
			ID:        p.ID,
			Name:      p.Name,
			SiteRef:   p.SiteRef,
			CreatedAt: p.CreatedAt.Format(timeLayout),
		})
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.projectSvc.GetProject(r.Context(), r.PathValue("projectID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{
		ID:        p.ID,
		Name:      p.Name,
		SiteRef:   p.SiteRef,
		CreatedAt: p.CreatedAt.Format(timeLayout),
	})
}

func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")

	reports, err := h.projectSvc.ListReportsByProject(r.Context(), projectID)
	if err != nil {
		writeJSON(w, http.StatusOK, []reportResponse{})
		return
	}

	result := make([]reportResponse, 0, len(reports))
	for i := range reports {
		rr := &reports[i]
		result = append(result, reportResponse{
			ID:            rr.ID,
			ProjectID:     rr.ProjectID,
			DatasetID:     rr.DatasetID,
			UCSClass:      rr.UCSClass,
			MeanRMR:       rr.MeanRMR,
			DominantClass: rr.DominantClass,
			StationCount:  rr.StationCount,
			FamilyCount:   rr.FamilyCount,
			Unclustered:   rr.Unclustered,
			Summary:       rr.Summary,
			CreatedAt:     rr.CreatedAt.Format(timeLayout),
		})
	}
	writeJSON(w, http.StatusOK, result)
}

// handleGetReport returns the full stored report blob, not just the row.
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("reportID")

	if rep := h.cache.Get(reportID); rep != nil {
		writeJSON(w, http.StatusOK, rep)
		return
	}

	row, err := h.projectSvc.GetReportByID(r.Context(), reportID)
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	rep, err := h.reportSvc.LoadReport(r.Context(), row)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load report: "+err.Error())
		return
	}

	h.cache.Put(reportID, rep)
	writeJSON(w, http.StatusOK, rep)
}

// handleGetDataset streams back the raw CSV as originally uploaded.
func (h *Handler) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("datasetID")

	ds, err := h.projectSvc.GetDataset(r.Context(), datasetID)
	if err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}

	data, err := h.reportSvc.LoadDataset(r.Context(), ds)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dataset: "+err.Error())
		return
	}

	name := ds.Name
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
