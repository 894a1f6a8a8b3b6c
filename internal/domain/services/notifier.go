package services

import (
	"context"
	"time"

	"roomledger/internal/domain/models"
)

// StatusEvent announces a task lifecycle transition.
type StatusEvent struct {
	TaskID    string            `json:"task_id"`
	Status    models.TaskStatus `json:"status"`
	ReportRef string            `json:"report_ref,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// ProgressEvent reports how far into the file a running task is.
type ProgressEvent struct {
	TaskID        string    `json:"task_id"`
	RowsProcessed int       `json:"rows_processed"`
	ErrorCount    int       `json:"error_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// Notifier pushes task events to interested clients. Delivery is
// fire-and-forget: implementations log failures and never block or fail the
// pipeline. Progress events for a task are emitted in non-decreasing
// rows-processed order, and the final status event always comes last.
type Notifier interface {
	EmitStatus(ctx context.Context, ev StatusEvent)
	EmitProgress(ctx context.Context, ev ProgressEvent)
}
