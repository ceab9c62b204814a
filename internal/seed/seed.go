package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domain"
)

type productSeed struct {
	Name        string
	PriceCents  int64
	Category    string
	Description string
	StockBySize map[string]int
	Colors      []string
	Images      []string
	Keywords    []string
}

// Apply inserts basic seed data for manual testing. It is idempotent: rows
// are matched by name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Camiseta Básica",
			PriceCents:  5990,
			Category:    "camisetas",
			Description: "Camiseta de algodão com corte reto",
			StockBySize: map[string]int{"P": 4, "M": 6, "G": 3},
			Colors:      []string{"preto", "branco"},
			Images:      []string{"https://cdn.example.com/camiseta-basica.jpg"},
			Keywords:    []string{"algodao", "basico"},
		},
		{
			Name:        "Bermuda Linho",
			PriceCents:  3990,
			Category:    "bermudas",
			Description: "Bermuda leve de linho",
			StockBySize: map[string]int{"P": 2, "M": 5},
			Colors:      []string{"bege"},
			Images:      []string{"https://cdn.example.com/bermuda-linho.jpg"},
			Keywords:    []string{"linho", "verao"},
		},
		{
			Name:        "Vestido Midi",
			PriceCents:  12990,
			Category:    "vestidos",
			Description: "Vestido midi com estampa floral",
			StockBySize: map[string]int{"M": 2, "G": 2},
			Colors:      []string{"floral"},
			Images:      []string{"https://cdn.example.com/vestido-midi.jpg"},
			Keywords:    []string{"festa", "floral"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}

	if err := seedPromotions(ctx, pool); err != nil {
		return fmt.Errorf("seed promotions: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price_cents, category, description, stock_by_size, colors, images, keywords)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.PriceCents, p.Category, p.Description, p.StockBySize, p.Colors, p.Images, p.Keywords)
	return err
}

func seedPromotions(ctx context.Context, pool *pgxpool.Pool) error {
	doc := domain.Promotions{
		Banner: domain.Banner{
			Active:          true,
			Text:            "Frete grátis acima de R$ 200",
			TextColor:       "#ffffff",
			BackgroundColor: "#b71c1c",
		},
		Coupons: []domain.Coupon{
			{Code: "PROMO10", DiscountPercent: 10, Active: true},
			{Code: "BEMVINDA15", DiscountPercent: 15, Active: true},
		},
	}
	const q = `
INSERT INTO promotions (id, banner, coupons)
VALUES (1, $1, $2)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, doc.Banner, doc.Coupons)
	return err
}
