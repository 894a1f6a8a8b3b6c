package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"roomledger/internal/config"
	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
)

// Outcome is the rule engine's decision for one valid row.
type Outcome string

const (
	OutcomeUpserted Outcome = "upserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeSkipped  Outcome = "skipped"
)

// RuleEngine decides, per valid row, between creating/replacing a record and
// conditionally updating an existing one.
//
// A completed or cancelled row must reference a reservation that already
// exists: a cancellation that arrives before the original booking was ever
// ingested must not fabricate one. Only a pending (or otherwise non-terminal)
// row may originate a record. The terminal path updates the status field only
// and silently skips absent keys; the skip is an expected business outcome,
// not an error.
type RuleEngine struct {
	reservations repositories.ReservationRepository
	statuses     config.StatusLiterals
	logger       *slog.Logger
}

func NewRuleEngine(reservations repositories.ReservationRepository, statuses config.StatusLiterals, logger *slog.Logger) *RuleEngine {
	return &RuleEngine{
		reservations: reservations,
		statuses:     statuses,
		logger:       logger,
	}
}

// Apply executes exactly one store interaction pattern for the row: an
// upsert, or a lookup followed by a status-only update. Store failures
// propagate unwrapped in meaning - they are infrastructure errors the queue
// must see for redelivery.
func (e *RuleEngine) Apply(ctx context.Context, r *models.Reservation) (Outcome, error) {
	if !e.statuses.Terminal(r.Status) {
		now := time.Now().UTC()
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := e.reservations.Upsert(ctx, r); err != nil {
			return "", fmt.Errorf("upsert reservation %s: %w", r.Key, err)
		}
		return OutcomeUpserted, nil
	}

	_, err := e.reservations.GetByKey(ctx, r.Key)
	if errors.Is(err, domain.ErrNotFound) {
		e.logger.Debug("terminal status for unknown reservation, skipping",
			"key", r.Key,
			"status", r.Status,
		)
		return OutcomeSkipped, nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup reservation %s: %w", r.Key, err)
	}

	if err := e.reservations.UpdateStatusByKey(ctx, r.Key, r.Status); err != nil {
		return "", fmt.Errorf("update reservation %s status: %w", r.Key, err)
	}
	return OutcomeUpdated, nil
}
