package repositories

import (
	"context"

	"roomledger/internal/domain/models"
)

// TaskRepository persists file-processing tasks.
// All lookups return domain.ErrNotFound (wrapped) when the task is absent.
type TaskRepository interface {
	// Create inserts a new task in PENDING state.
	Create(ctx context.Context, task *models.Task) error

	// GetByID retrieves a task by id.
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// UpdateStatus moves a task to the given status.
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)

	// Complete moves a task to a terminal status and attaches the report
	// reference (empty when the run produced no errors).
	Complete(ctx context.Context, id string, status models.TaskStatus, reportRef string) (*models.Task, error)
}
