package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Client enqueues ingestion jobs. Thin wrapper so handlers depend on an
// interface-sized surface instead of asynq directly.
type Client struct {
	inner    *asynq.Client
	maxRetry int
}

func NewClient(redisAddr string, maxRetry int) *Client {
	return &Client{
		inner:    asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
		maxRetry: maxRetry,
	}
}

// EnqueueIngest queues one ingestion job for the task.
func (c *Client) EnqueueIngest(ctx context.Context, taskID string) error {
	task, err := NewIngestTask(taskID, c.maxRetry)
	if err != nil {
		return err
	}
	if _, err := c.inner.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue ingest for task %s: %w", taskID, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}
