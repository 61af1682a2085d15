package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/rockscore/rockscore/internal/project"
	"github.com/rockscore/rockscore/pkg/analysis"
	"github.com/rockscore/rockscore/pkg/survey"
)

// AnalyzeRequest describes one analysis submission.
type AnalyzeRequest struct {
	ProjectName string
	DatasetName string
	CSV         []byte
	Options     analysis.Options
}

// AnalyzeResult bundles the stored report with its database row.
type AnalyzeResult struct {
	Report  *analysis.Report
	Row     *project.ReportRow
	Dataset *project.Dataset
}

// Service orchestrates the analysis pipeline.
type Service struct {
	projects *project.Service
	storage  StorageClient
}

// NewService creates a new report Service.
func NewService(projects *project.Service, storage StorageClient) *Service {
	return &Service{projects: projects, storage: storage}
}

// Process runs the full pipeline for an uploaded dataset: parse, score,
// cluster, and persist both the raw CSV and the resulting report.
func (s *Service) Process(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	p, err := s.projects.EnsureProject(ctx, req.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("ensure project: %w", err)
	}

	svy, problems, err := survey.ReadCSV(bytes.NewReader(req.CSV))
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	datasetID := uuid.NewString()
	if err := s.storage.PutDataset(ctx, p.ID, datasetID, req.CSV); err != nil {
		return nil, fmt.Errorf("store dataset blob: %w", err)
	}

	datasetRef := fmt.Sprintf("%s/datasets/%s.csv", p.ID, datasetID)
	ds, err := s.projects.InsertDataset(ctx, datasetID, p.ID, req.DatasetName,
		len(svy.Stations), svy.RecordCount(), datasetRef)
	if err != nil {
		return nil, fmt.Errorf("insert dataset: %w", err)
	}

	rep := analysis.Run(svy, problems, req.Options)
	rep.ID = uuid.NewString()

	data, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := s.storage.PutReport(ctx, p.ID, rep.ID, data); err != nil {
		return nil, fmt.Errorf("store report blob: %w", err)
	}

	summaryJSON, err := json.Marshal(rep.Summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}

	row, err := s.projects.InsertReport(ctx, &project.ReportRow{
		ID:            rep.ID,
		ProjectID:     p.ID,
		DatasetID:     ds.ID,
		UCSClass:      rep.UCSClass,
		MeanRMR:       rep.Summary.MeanRMR,
		DominantClass: rep.Summary.DominantClass,
		StationCount:  rep.Summary.Stations,
		FamilyCount:   rep.Summary.Families,
		Unclustered:   rep.Summary.Unclustered,
		Summary:       summaryJSON,
		StorageRef:    fmt.Sprintf("%s/reports/%s.json", p.ID, rep.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	log.Printf("analysis %s completed: project=%s dataset=%s stations=%d families=%d",
		row.ID, p.Name, ds.ID, rep.Summary.Stations, rep.Summary.Families)

	return &AnalyzeResult{Report: rep, Row: row, Dataset: ds}, nil
}

// LoadDataset fetches the raw CSV blob for a dataset row.
func (s *Service) LoadDataset(ctx context.Context, ds *project.Dataset) ([]byte, error) {
	data, err := s.storage.GetDataset(ctx, ds.ProjectID, ds.ID)
	if err != nil {
		return nil, fmt.Errorf("load dataset blob: %w", err)
	}
	return data, nil
}

// LoadReport fetches a stored report blob by its database row.
func (s *Service) LoadReport(ctx context.Context, row *project.ReportRow) (*analysis.Report, error) {
	data, err := s.storage.GetReport(ctx, row.ProjectID, row.ID)
	if err != nil {
		return nil, fmt.Errorf("load report blob: %w", err)
	}
	var rep analysis.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &rep, nil
}
