// Package api implements the hosted rockscore REST API.
// It provides analysis and read endpoints backed by Postgres and blob storage.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/rockscore/rockscore/internal/project"
	"github.com/rockscore/rockscore/internal/report"
)

// Handler is the top-level API handler for the hosted rockscore service.
type Handler struct {
	db         *sql.DB
	projectSvc *project.Service
	reportSvc  *report.Service
	cache      *ReportCache
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, projectSvc *project.Service, reportSvc *report.Service, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{
		db:         db,
		projectSvc: projectSvc,
		reportSvc:  reportSvc,
		cache:      cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
// The auth middleware guards write endpoints; pass nil to disable.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	if auth == nil {
		auth = func(next http.Handler) http.Handler { return next }
	}

	// Write endpoints (auth-protected)
	mux.Handle("POST /api/v1/analyses", auth(http.HandlerFunc(h.handleAnalyze)))

	// Read endpoints
	mux.HandleFunc("GET /api/projects", h.handleListProjects)
	mux.HandleFunc("GET /api/projects/{projectID}", h.handleGetProject)
	mux.HandleFunc("GET /api/projects/{projectID}/reports", h.handleListReports)
	mux.HandleFunc("GET /api/reports/{reportID}", h.handleGetReport)
	mux.HandleFunc("GET /api/datasets/{datasetID}", h.handleGetDataset)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
