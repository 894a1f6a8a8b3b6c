package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the prefixed tables when they do not exist yet. Run
// by both binaries at startup; harmless when the tables are already there.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				file_path TEXT NOT NULL,
				status VARCHAR(32) NOT NULL,
				report_ref TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)
		`, tables.Tasks),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				reservation_id VARCHAR(255) PRIMARY KEY,
				guest_name VARCHAR(255) NOT NULL,
				status VARCHAR(64) NOT NULL,
				check_in DATE NOT NULL,
				check_out DATE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)
		`, tables.Reservations),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
