package repositories

import (
	"context"

	"roomledger/internal/domain/models"
)

// ReportStore persists report artifacts addressed by task id. An absent
// artifact (domain.ErrNotFound) is distinct from a present artifact with an
// empty entry list; the core never writes the latter.
type ReportStore interface {
	// Write persists the ordered entries for a task and returns the
	// artifact reference. Writing twice for the same task overwrites the
	// prior artifact.
	Write(ctx context.Context, taskID string, entries []models.ReportEntry) (string, error)

	// Read loads the entries behind a reference. Used by the retrieval
	// endpoint, not by the pipeline.
	Read(ctx context.Context, ref string) ([]models.ReportEntry, error)
}
