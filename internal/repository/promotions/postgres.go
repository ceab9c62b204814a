package promotions

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

// The promotions document lives in a single row pinned to id = 1.

func (r *postgresRepo) Get(ctx context.Context) (*domain.Promotions, error) {
	const q = `
SELECT banner, coupons
FROM promotions
WHERE id = 1
`
	var p domain.Promotions
	if err := r.pool.QueryRow(ctx, q).Scan(&p.Banner, &p.Coupons); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Promotions) error {
	const q = `
INSERT INTO promotions (id, banner, coupons, updated_at)
VALUES (1, $1, $2, now())
ON CONFLICT (id) DO UPDATE SET
    banner = EXCLUDED.banner,
    coupons = EXCLUDED.coupons,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, p.Banner, p.Coupons)
	return err
}
