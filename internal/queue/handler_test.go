package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
)

type fakeProcessor struct {
	calls   []string
	returns error
}

func (f *fakeProcessor) ProcessTask(ctx context.Context, taskID string) error {
	f.calls = append(f.calls, taskID)
	return f.returns
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleIngestDelegates(t *testing.T) {
	p := &fakeProcessor{}
	h := NewHandler(p, testLogger())

	task, err := NewIngestTask("t1", 5)
	if err != nil {
		t.Fatalf("NewIngestTask() error = %v", err)
	}

	if err := h.HandleIngest(context.Background(), task); err != nil {
		t.Fatalf("HandleIngest() error = %v", err)
	}
	if len(p.calls) != 1 || p.calls[0] != "t1" {
		t.Errorf("processor calls = %v, want [t1]", p.calls)
	}
}

func TestHandleIngestPropagatesTransientFailure(t *testing.T) {
	transient := errors.New("connection refused")
	h := NewHandler(&fakeProcessor{returns: transient}, testLogger())

	task, _ := NewIngestTask("t1", 5)
	err := h.HandleIngest(context.Background(), task)
	if !errors.Is(err, transient) {
		t.Fatalf("error = %v, transient failures must reach asynq for retry", err)
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Error("transient failure must not skip retry")
	}
}

func TestHandleIngestBadPayloadSkipsRetry(t *testing.T) {
	p := &fakeProcessor{}
	h := NewHandler(p, testLogger())

	task := asynq.NewTask(TypeIngest, []byte("not json"))
	err := h.HandleIngest(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("error = %v, undecodable payloads can never succeed", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("processor was called %d times for a bad payload", len(p.calls))
	}
}
