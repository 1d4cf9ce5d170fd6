package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// RunMigrations prepares the tables used by the Postgres store.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_resume_store",
			Up:   createResumeStore,
		},
		{
			Name: "add_updated_at_index_to_resume_store",
			Up:   addUpdatedAtIndex,
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return errors.Wrapf(err, "migration %s", m.Name)
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createResumeStore(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resume_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func addUpdatedAtIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS resume_store_updated_at_idx
		ON resume_store (updated_at);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// the index only speeds up housekeeping queries
		slog.Warn("Error adding updated_at index (non-fatal)", "error", err)
		return nil
	}
	return nil
}
