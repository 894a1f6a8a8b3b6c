package notify

import (
	"context"

	"roomledger/internal/domain/services"
)

// NoopNotifier discards all events. Used when no Redis is configured and in
// tests that do not observe events.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (NoopNotifier) EmitStatus(context.Context, services.StatusEvent)     {}
func (NoopNotifier) EmitProgress(context.Context, services.ProgressEvent) {}
