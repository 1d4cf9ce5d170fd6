package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// PGStore keeps records in the resume_store table created by the migration
// package.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw string
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM resume_store WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", key)
	}
	return []byte(raw), nil
}

func (s *PGStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO resume_store (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value))
	if err != nil {
		return errors.Wrapf(err, "upsert %s", key)
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM resume_store WHERE key = $1`, key); err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}
