package postgres

import (
	"context"
	"fmt"
	"time"

	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
)

// PostgresTaskRepository implements the TaskRepository interface
type PostgresTaskRepository struct {
	config *RepositoryConfig
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(config *RepositoryConfig) repositories.TaskRepository {
	return &PostgresTaskRepository{config: config}
}

// Create inserts a new task
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, file_path, status, report_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.config.Tables.Tasks)

	now := time.Now().UTC()
	err := r.config.Pool.QueryRow(ctx, query,
		task.ID,
		task.FilePath,
		task.Status,
		task.ReportRef,
		now,
		now,
	).Scan(&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("task %s: %w", task.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := fmt.Sprintf(`
		SELECT id, file_path, status, report_ref, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.config.Tables.Tasks)

	var task models.Task
	err := r.config.Pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.FilePath,
		&task.Status,
		&task.ReportRef,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &task, nil
}

// UpdateStatus moves a task to the given status
func (r *PostgresTaskRepository) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, file_path, status, report_ref, created_at, updated_at
	`, r.config.Tables.Tasks)

	var task models.Task
	err := r.config.Pool.QueryRow(ctx, query, status, time.Now().UTC(), id).Scan(
		&task.ID,
		&task.FilePath,
		&task.Status,
		&task.ReportRef,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update task status: %w", err)
	}

	return &task, nil
}

// Complete moves a task to a terminal status and attaches the report reference
func (r *PostgresTaskRepository) Complete(ctx context.Context, id string, status models.TaskStatus, reportRef string) (*models.Task, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, report_ref = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, file_path, status, report_ref, created_at, updated_at
	`, r.config.Tables.Tasks)

	var task models.Task
	err := r.config.Pool.QueryRow(ctx, query, status, reportRef, time.Now().UTC(), id).Scan(
		&task.ID,
		&task.FilePath,
		&task.Status,
		&task.ReportRef,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("complete task: %w", err)
	}

	return &task, nil
}
