package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// KVRepository stores history collections in a two column table.
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository { return &KVRepository{db: db} }

// EnsureSchema creates the table when missing.
func (r *KVRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS scan_history_kv (
  k          VARCHAR(191) NOT NULL PRIMARY KEY,
  v          LONGBLOB     NOT NULL,
  updated_at DATETIME(6)  NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM scan_history_kv WHERE k = ? LIMIT 1;`
	var v []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO scan_history_kv (k, v, updated_at)
VALUES (?,?,?)
ON DUPLICATE KEY UPDATE
  v=VALUES(v), updated_at=VALUES(updated_at);`
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC())
	return err
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scan_history_kv WHERE k = ?;`, key)
	return err
}
