package repositories

import (
	"context"

	"roomledger/internal/domain/models"
)

// ReservationRepository persists reservation records keyed by reservation key.
type ReservationRepository interface {
	// GetByKey retrieves a reservation, or domain.ErrNotFound (wrapped)
	// when no record exists for the key.
	GetByKey(ctx context.Context, key string) (*models.Reservation, error)

	// Upsert creates the record if absent, otherwise replaces its fields.
	// Idempotent by key.
	Upsert(ctx context.Context, r *models.Reservation) error

	// UpdateStatusByKey updates only the status field of an existing
	// record. Returns domain.ErrNotFound (wrapped) when no record exists;
	// it never creates one.
	UpdateStatusByKey(ctx context.Context, key, status string) error
}
