package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, f Filters, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	offset := (page - 1) * limit

	const q = `
SELECT id::text, name, price_cents, COALESCE(category, ''), COALESCE(description, ''),
       stock_by_size, colors, images, keywords, created_at,
       COUNT(*) OVER() AS total
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'
              OR description ILIKE '%' || $1 || '%'
              OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE '%' || $1 || '%'))
  AND ($2 = '' OR category = $2)
  AND ($3 = '' OR COALESCE((stock_by_size ->> $3)::int, 0) > 0)
  AND ($4 = '' OR $4 = ANY(colors))
ORDER BY created_at DESC, id
LIMIT $5 OFFSET $6
`
	rows, err := r.pool.Query(ctx, q, f.Query, f.Category, f.Size, f.Color, limit, offset)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var (
		items []domain.Product
		total int
	)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.Description,
			&p.StockBySize, &p.Colors, &p.Images, &p.Keywords, &p.CreatedAt, &total); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Page{Items: items, Page: page, Limit: limit, TotalPages: totalPages}, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, name, price_cents, COALESCE(category, ''), COALESCE(description, ''),
       stock_by_size, colors, images, keywords, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.Category,
		&p.Description, &p.StockBySize, &p.Colors, &p.Images, &p.Keywords, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, price_cents, category, description, stock_by_size, colors, images, keywords)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, NULLIF($4, ''), NULLIF($5, ''),
        COALESCE($6, '{}'::jsonb), $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    stock_by_size = EXCLUDED.stock_by_size,
    colors = EXCLUDED.colors,
    images = EXCLUDED.images,
    keywords = EXCLUDED.keywords
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.Name, p.PriceCents, p.Category, p.Description,
		p.StockBySize, p.Colors, p.Images, p.Keywords).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s name=%q", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
