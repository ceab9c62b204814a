package promotions

import (
	"context"

	"storefront-backend/internal/domain"
)

// Repository reads and writes the single storefront promotions document.
type Repository interface {
	Get(ctx context.Context) (*domain.Promotions, error)
	Update(ctx context.Context, p domain.Promotions) error
}
