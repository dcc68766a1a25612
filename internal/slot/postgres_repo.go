package slot

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSlot keeps slots in the storage_slots table created by the
// migrations under db/migrations.
type PostgresSlot struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresSlot(db *pgxpool.Pool, timeout time.Duration) *PostgresSlot {
	return &PostgresSlot{db: db, timeout: timeout}
}

func (r *PostgresSlot) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresSlot) Get(ctx context.Context, key string) ([]byte, error) {
	const selectSQL = `SELECT value FROM storage_slots WHERE key = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var value []byte
	if err := r.db.QueryRow(timeoutCtx, selectSQL, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (r *PostgresSlot) Set(ctx context.Context, key string, value []byte) error {
	const upsertSQL = `
		INSERT INTO storage_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(timeoutCtx, upsertSQL, key, value)
	return err
}

func (r *PostgresSlot) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

// Close releases the pool.
func (r *PostgresSlot) Close() error {
	r.db.Close()
	return nil
}
