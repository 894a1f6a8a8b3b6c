// Package queue wires the ingestion pipeline to asynq. asynq owns delivery
// semantics: at-least-once, bounded attempts with exponential backoff. The
// pipeline only decides whether a failure is worth retrying.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeIngest is the asynq task type for spreadsheet ingestion jobs.
const TypeIngest = "reservation:ingest"

// IngestPayload is the job payload: just the task id, everything else is
// loaded from the store by the orchestrator.
type IngestPayload struct {
	TaskID string `json:"task_id"`
}

// NewIngestTask builds the queued job for one task.
func NewIngestTask(taskID string, maxRetry int) (*asynq.Task, error) {
	payload, err := json.Marshal(IngestPayload{TaskID: taskID})
	if err != nil {
		return nil, fmt.Errorf("encode ingest payload: %w", err)
	}
	return asynq.NewTask(TypeIngest, payload, asynq.MaxRetry(maxRetry)), nil
}
