package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// Processor is the pipeline's entry point as the queue sees it. A returned
// error asks for redelivery; nil means the task reached a terminal state.
type Processor interface {
	ProcessTask(ctx context.Context, taskID string) error
}

// Handler adapts the orchestrator to asynq's handler contract.
type Handler struct {
	processor Processor
	logger    *slog.Logger
}

func NewHandler(processor Processor, logger *slog.Logger) *Handler {
	return &Handler{processor: processor, logger: logger}
}

// HandleIngest runs one ingestion job. A payload that does not decode can
// never succeed, so it is marked SkipRetry; everything else that errors is
// treated as transient and left to asynq's retry policy.
func (h *Handler) HandleIngest(ctx context.Context, t *asynq.Task) error {
	var p IngestPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("decode ingest payload: %v: %w", err, asynq.SkipRetry)
	}

	h.logger.Info("ingest job started", "task_id", p.TaskID)
	if err := h.processor.ProcessTask(ctx, p.TaskID); err != nil {
		h.logger.Warn("ingest job failed, will retry", "task_id", p.TaskID, "error", err)
		return err
	}
	return nil
}
