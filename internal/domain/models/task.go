package models

import "time"

// TaskStatus represents the lifecycle state of a file-processing task.
// Transitions are one-directional: PENDING -> IN_PROGRESS -> COMPLETED|FAILED.
// A queue redelivery restarts the same path from the top; there is no other
// way back from a terminal state.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskFailed     TaskStatus = "FAILED"
)

// Terminal reports whether the status is an end state.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// Task is the durable record of one file-processing request and its outcome.
// ReportRef stays empty until the run produced at least one error item; its
// absence signals a clean run.
type Task struct {
	ID        string     `json:"id"`
	FilePath  string     `json:"file_path"`
	Status    TaskStatus `json:"status"`
	ReportRef string     `json:"report_ref,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
