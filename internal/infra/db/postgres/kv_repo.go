package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

type KVRepository struct{ db *sql.DB }

func NewKVRepository(db *sql.DB) *KVRepository { return &KVRepository{db: db} }

func (r *KVRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS scan_history_kv (
  k          TEXT        PRIMARY KEY,
  v          BYTEA       NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := r.db.QueryRowContext(ctx, `SELECT v FROM scan_history_kv WHERE k=$1 LIMIT 1;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return v, err
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO scan_history_kv (k, v, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (k) DO UPDATE SET
 v = EXCLUDED.v,
 updated_at = EXCLUDED.updated_at;`
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC())
	return err
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scan_history_kv WHERE k=$1;`, key)
	return err
}
