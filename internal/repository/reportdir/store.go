// Package reportdir stores report artifacts as JSON files on disk, one per
// task, addressed solely by task id. The artifact's existence is meaningful:
// a clean run writes nothing, so a missing file signals zero errors rather
// than a lost report.
package reportdir

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
)

// Store persists reports under a single directory. References returned by
// Write are file names relative to that directory, so the directory can move
// without invalidating stored references.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write persists the entries for a task, overwriting any prior artifact for
// the same task (redelivered jobs regenerate their report). The write goes
// through a temp file and rename so readers never observe a partial report.
func (s *Store) Write(ctx context.Context, taskID string, entries []models.ReportEntry) (string, error) {
	ref := taskID + ".json"

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report for task %s: %w", taskID, err)
	}

	tmp, err := os.CreateTemp(s.dir, ref+".tmp*")
	if err != nil {
		return "", fmt.Errorf("create report temp file: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write report for task %s: %w", taskID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close report temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, ref)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish report for task %s: %w", taskID, err)
	}

	return ref, nil
}

// Read loads the entries behind a reference. Returns domain.ErrNotFound
// (wrapped) when no artifact exists.
func (s *Store) Read(ctx context.Context, ref string) ([]models.ReportEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(ref)))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("report %s: %w", ref, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", ref, err)
	}

	var entries []models.ReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", ref, err)
	}
	return entries, nil
}
