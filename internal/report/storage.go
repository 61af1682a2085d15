// Package report orchestrates the server-side analysis pipeline: dataset
// ingest, RMR scoring, family clustering, and result storage.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for uploaded datasets and reports.
type StorageClient interface {
	PutDataset(ctx context.Context, projectID, datasetID string, data []byte) error
	GetDataset(ctx context.Context, projectID, datasetID string) ([]byte, error)
	PutReport(ctx context.Context, projectID, reportID string, data []byte) error
	GetReport(ctx context.Context, projectID, reportID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(projectID, kind, id, ext string) string {
	return filepath.Join(s.BaseDir, projectID, kind, id+ext)
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutDataset stores a raw survey CSV.
func (s *LocalStorage) PutDataset(ctx context.Context, projectID, datasetID string, data []byte) error {
	return s.put(s.path(projectID, "datasets", datasetID, ".csv"), data)
}

// GetDataset retrieves a raw survey CSV.
func (s *LocalStorage) GetDataset(ctx context.Context, projectID, datasetID string) ([]byte, error) {
	return os.ReadFile(s.path(projectID, "datasets", datasetID, ".csv"))
}

// PutReport stores a report blob.
func (s *LocalStorage) PutReport(ctx context.Context, projectID, reportID string, data []byte) error {
	return s.put(s.path(projectID, "reports", reportID, ".json"), data)
}

// GetReport retrieves a report blob.
func (s *LocalStorage) GetReport(ctx context.Context, projectID, reportID string) ([]byte, error) {
	return os.ReadFile(s.path(projectID, "reports", reportID, ".json"))
}
