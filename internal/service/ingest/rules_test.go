package ingest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roomledger/internal/config"
	"roomledger/internal/domain/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reservation(key, status string) *models.Reservation {
	return &models.Reservation{
		Key:       key,
		GuestName: "Alice Smith",
		Status:    status,
		CheckIn:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestRuleEngineUpsertsPending(t *testing.T) {
	repo := newFakeReservationRepo()
	engine := NewRuleEngine(repo, config.DefaultStatusLiterals(), discardLogger())

	outcome, err := engine.Apply(context.Background(), reservation("R1", "pending"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if outcome != OutcomeUpserted {
		t.Errorf("outcome = %s, want %s", outcome, OutcomeUpserted)
	}
	if repo.upsertCalls != 1 || repo.getCalls != 0 || repo.updateCalls != 0 {
		t.Errorf("calls = get:%d upsert:%d update:%d, want exactly one upsert",
			repo.getCalls, repo.upsertCalls, repo.updateCalls)
	}
	if _, ok := repo.records["R1"]; !ok {
		t.Error("record not persisted")
	}
}

func TestRuleEngineUpsertReplacesExisting(t *testing.T) {
	repo := newFakeReservationRepo()
	engine := NewRuleEngine(repo, config.DefaultStatusLiterals(), discardLogger())
	ctx := context.Background()

	first := reservation("R1", "pending")
	if _, err := engine.Apply(ctx, first); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	second := reservation("R1", "pending")
	second.GuestName = "Alice S. Smith"
	outcome, err := engine.Apply(ctx, second)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if outcome != OutcomeUpserted {
		t.Errorf("outcome = %s, want %s", outcome, OutcomeUpserted)
	}
	if got := repo.records["R1"].GuestName; got != "Alice S. Smith" {
		t.Errorf("guest name = %q, not replaced", got)
	}
}

func TestRuleEngineTerminalStatusUpdatesExisting(t *testing.T) {
	repo := newFakeReservationRepo()
	existing := reservation("R1", "pending")
	repo.records["R1"] = *existing
	engine := NewRuleEngine(repo, config.DefaultStatusLiterals(), discardLogger())

	row := reservation("R1", "completed")
	row.GuestName = "Someone Else" // must NOT overwrite the stored name

	outcome, err := engine.Apply(context.Background(), row)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Errorf("outcome = %s, want %s", outcome, OutcomeUpdated)
	}
	if repo.upsertCalls != 0 {
		t.Errorf("upsertCalls = %d, terminal rows must never upsert", repo.upsertCalls)
	}

	stored := repo.records["R1"]
	if stored.Status != "completed" {
		t.Errorf("status = %q, want completed", stored.Status)
	}
	if stored.GuestName != "Alice Smith" {
		t.Errorf("guest name = %q, status-only update must leave other fields untouched", stored.GuestName)
	}
}

func TestRuleEngineTerminalStatusSkipsAbsentKey(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"cancelled row without prior booking", "cancelled"},
		{"completed row without prior booking", "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReservationRepo()
			engine := NewRuleEngine(repo, config.DefaultStatusLiterals(), discardLogger())

			outcome, err := engine.Apply(context.Background(), reservation("GHOST", tt.status))
			if err != nil {
				t.Fatalf("Apply() error = %v, skip is not an error", err)
			}
			if outcome != OutcomeSkipped {
				t.Errorf("outcome = %s, want %s", outcome, OutcomeSkipped)
			}
			// One lookup, zero writes: terminal rows never fabricate
			// a reservation.
			if repo.getCalls != 1 {
				t.Errorf("getCalls = %d, want 1", repo.getCalls)
			}
			if repo.upsertCalls != 0 || repo.updateCalls != 0 {
				t.Errorf("writes = upsert:%d update:%d, want zero", repo.upsertCalls, repo.updateCalls)
			}
		})
	}
}

func TestRuleEngineStoreFailurePropagates(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.failWith = context.DeadlineExceeded
	engine := NewRuleEngine(repo, config.DefaultStatusLiterals(), discardLogger())

	if _, err := engine.Apply(context.Background(), reservation("R1", "pending")); err == nil {
		t.Fatal("store failure must propagate for queue redelivery")
	}
}

func TestRuleEngineLocalizedTerminalLiterals(t *testing.T) {
	literals := config.StatusLiterals{Pending: "offen", Completed: "abgeschlossen", Cancelled: "storniert"}
	repo := newFakeReservationRepo()
	engine := NewRuleEngine(repo, literals, discardLogger())

	outcome, err := engine.Apply(context.Background(), reservation("R1", "storniert"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if outcome != OutcomeSkipped {
		t.Errorf("outcome = %s, localized cancelled literal must take the conditional path", outcome)
	}
}
