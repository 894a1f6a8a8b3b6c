package postgres

import (
	"context"
	"fmt"
	"time"

	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
)

// PostgresReservationRepository implements the ReservationRepository interface
type PostgresReservationRepository struct {
	config *RepositoryConfig
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(config *RepositoryConfig) repositories.ReservationRepository {
	return &PostgresReservationRepository{config: config}
}

// GetByKey retrieves a reservation by reservation key
func (r *PostgresReservationRepository) GetByKey(ctx context.Context, key string) (*models.Reservation, error) {
	query := fmt.Sprintf(`
		SELECT reservation_id, guest_name, status, check_in, check_out, created_at, updated_at
		FROM %s
		WHERE reservation_id = $1
	`, r.config.Tables.Reservations)

	var res models.Reservation
	err := r.config.Pool.QueryRow(ctx, query, key).Scan(
		&res.Key,
		&res.GuestName,
		&res.Status,
		&res.CheckIn,
		&res.CheckOut,
		&res.CreatedAt,
		&res.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("reservation %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return &res, nil
}

// Upsert creates or replaces a reservation keyed by reservation_id.
// Idempotent: re-running the same row converges on the same record.
func (r *PostgresReservationRepository) Upsert(ctx context.Context, res *models.Reservation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (reservation_id, guest_name, status, check_in, check_out, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (reservation_id) DO UPDATE
		SET guest_name = EXCLUDED.guest_name,
		    status = EXCLUDED.status,
		    check_in = EXCLUDED.check_in,
		    check_out = EXCLUDED.check_out,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, r.config.Tables.Reservations)

	err := r.config.Pool.QueryRow(ctx, query,
		res.Key,
		res.GuestName,
		res.Status,
		res.CheckIn,
		res.CheckOut,
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(&res.CreatedAt, &res.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert reservation: %w", err)
	}

	return nil
}

// UpdateStatusByKey updates only the status field of an existing reservation
func (r *PostgresReservationRepository) UpdateStatusByKey(ctx context.Context, key, status string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = $2
		WHERE reservation_id = $3
	`, r.config.Tables.Reservations)

	result, err := r.config.Pool.Exec(ctx, query, status, time.Now().UTC(), key)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", key, domain.ErrNotFound)
	}

	return nil
}
