// Package project manages persistent state: survey projects, uploaded
// datasets, and the analysis reports produced from them.
package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service provides project and report management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Project represents a geomechanical survey campaign (one per site).
type Project struct {
	ID        string
	Name      string
	SiteRef   *string
	CreatedAt time.Time
}

// Dataset represents one uploaded discontinuity survey CSV.
type Dataset struct {
	ID           string
	ProjectID    string
	Name         string
	StationCount int
	RecordCount  int
	StorageRef   string
	CreatedAt    time.Time
}

// ReportRow represents an analysis report record from the database.
type ReportRow struct {
	ID            string
	ProjectID     string
	DatasetID     string
	UCSClass      string
	MeanRMR       float64
	DominantClass string
	StationCount  int
	FamilyCount   int
	Unclustered   int
	Summary       json.RawMessage
	StorageRef    string
	CreatedAt     time.Time
}

// NewService creates a new project Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateProject creates a new project.
func (s *Service) CreateProject(ctx context.Context, name string, siteRef *string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO projects (name, site_ref)
		 VALUES ($1, $2)
		 RETURNING id, name, site_ref, created_at`,
		name, siteRef,
	).Scan(&p.ID, &p.Name, &p.SiteRef, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// GetProjectByName looks up a project by name.
func (s *Service) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, site_ref, created_at
		 FROM projects WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.SiteRef, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project by name %s: %w", name, err)
	}
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, site_ref, created_at
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.SiteRef, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by name.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, site_ref, created_at
		 FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.SiteRef, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// EnsureProject gets or creates a project by name.
func (s *Service) EnsureProject(ctx context.Context, name string) (*Project, error) {
	p, err := s.GetProjectByName(ctx, name)
	if err == nil {
		return p, nil
	}

	p, err = s.CreateProject(ctx, name, nil)
	if err != nil {
		// Could be a race; try getting again.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetProjectByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure project: %w", err)
	}
	return p, nil
}

// InsertDataset records an uploaded survey dataset. The caller supplies
// the ID so the database row and the stored blob share one identifier.
func (s *Service) InsertDataset(ctx context.Context, id, projectID, name string, stationCount, recordCount int, storageRef string) (*Dataset, error) {
	d := &Dataset{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO datasets (id, project_id, name, station_count, record_count, storage_ref)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, project_id, name, station_count, record_count, storage_ref, created_at`,
		id, projectID, name, stationCount, recordCount, storageRef,
	).Scan(&d.ID, &d.ProjectID, &d.Name, &d.StationCount, &d.RecordCount, &d.StorageRef, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert dataset %s: %w", name, err)
	}
	return d, nil
}

// GetDataset retrieves dataset metadata by ID.
func (s *Service) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	d := &Dataset{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, station_count, record_count, storage_ref, created_at
		 FROM datasets WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.ProjectID, &d.Name, &d.StationCount, &d.RecordCount, &d.StorageRef, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get dataset %s: %w", id, err)
	}
	return d, nil
}

// InsertReport records a completed analysis report. The caller supplies
// the ID so the database row and the stored blob share one identifier.
func (s *Service) InsertReport(ctx context.Context, r *ReportRow) (*ReportRow, error) {
	out := &ReportRow{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO reports (id, project_id, dataset_id, ucs_class, mean_rmr, dominant_class,
		                      station_count, family_count, unclustered_count, summary, storage_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, project_id, dataset_id, ucs_class, mean_rmr, dominant_class,
		           station_count, family_count, unclustered_count, summary, storage_ref, created_at`,
		r.ID, r.ProjectID, r.DatasetID, r.UCSClass, r.MeanRMR, r.DominantClass,
		r.StationCount, r.FamilyCount, r.Unclustered, r.Summary, r.StorageRef,
	).Scan(
		&out.ID, &out.ProjectID, &out.DatasetID, &out.UCSClass, &out.MeanRMR, &out.DominantClass,
		&out.StationCount, &out.FamilyCount, &out.Unclustered, &out.Summary, &out.StorageRef, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return out, nil
}

// ListReportsByProject returns all reports for a project, newest first.
func (s *Service) ListReportsByProject(ctx context.Context, projectID string) ([]ReportRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, dataset_id, ucs_class, mean_rmr, dominant_class,
		        station_count, family_count, unclustered_count, summary, storage_ref, created_at
		 FROM reports WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportRow
	for rows.Next() {
		var r ReportRow
		if err := rows.Scan(
			&r.ID, &r.ProjectID, &r.DatasetID, &r.UCSClass, &r.MeanRMR, &r.DominantClass,
			&r.StationCount, &r.FamilyCount, &r.Unclustered, &r.Summary, &r.StorageRef, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetReportByID returns a single report by ID.
func (s *Service) GetReportByID(ctx context.Context, reportID string) (*ReportRow, error) {
	r := &ReportRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, dataset_id, ucs_class, mean_rmr, dominant_class,
		        station_count, family_count, unclustered_count, summary, storage_ref, created_at
		 FROM reports WHERE id = $1`,
		reportID,
	).Scan(
		&r.ID, &r.ProjectID, &r.DatasetID, &r.UCSClass, &r.MeanRMR, &r.DominantClass,
		&r.StationCount, &r.FamilyCount, &r.Unclustered, &r.Summary, &r.StorageRef, &r.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", reportID, err)
	}
	return r, nil
}
