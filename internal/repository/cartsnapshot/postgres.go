package cartsnapshot

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Save(ctx context.Context, sessionID string, snapshot []byte) error {
	const q = `
INSERT INTO cart_snapshots (session_id, snapshot, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_id) DO UPDATE SET
    snapshot = EXCLUDED.snapshot,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, sessionID, snapshot)
	return err
}

func (r *postgresRepo) Load(ctx context.Context, sessionID string) ([]byte, error) {
	const q = `
SELECT snapshot
FROM cart_snapshots
WHERE session_id = $1
`
	var data []byte
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
