// Package notify provides Notifier adapters. The production adapter
// publishes task events over Redis pub/sub; subscribers (the WebSocket
// gateway, CLIs) consume them outside this repository.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"roomledger/internal/domain/services"

	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces task event channels. Each task gets its own
// channel so clients can subscribe per upload.
const channelPrefix = "roomledger:tasks:"

// envelope is the wire form of a task event. Payload holds the marshaled
// StatusEvent or ProgressEvent depending on Type.
type envelope struct {
	Type    string          `json:"type"` // "status" or "progress"
	Payload json.RawMessage `json:"payload"`
}

// RedisNotifier publishes events fire-and-forget: publish failures are
// logged and swallowed, never surfaced to the pipeline.
type RedisNotifier struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisNotifier(client *redis.Client, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, logger: logger}
}

func (n *RedisNotifier) EmitStatus(ctx context.Context, ev services.StatusEvent) {
	n.publish(ctx, ev.TaskID, "status", ev)
}

func (n *RedisNotifier) EmitProgress(ctx context.Context, ev services.ProgressEvent) {
	n.publish(ctx, ev.TaskID, "progress", ev)
}

func (n *RedisNotifier) publish(ctx context.Context, taskID, kind string, ev any) {
	payload, err := json.Marshal(ev)
	if err != nil {
		n.logger.Warn("encode task event", "task_id", taskID, "type", kind, "error", err)
		return
	}
	msg, err := json.Marshal(envelope{Type: kind, Payload: payload})
	if err != nil {
		n.logger.Warn("encode task event envelope", "task_id", taskID, "type", kind, "error", err)
		return
	}
	if err := n.client.Publish(ctx, channelPrefix+taskID, msg).Err(); err != nil {
		n.logger.Warn("publish task event", "task_id", taskID, "type", kind, "error", err)
	}
}
