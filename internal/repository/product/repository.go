package product

import (
	"context"

	"storefront-backend/internal/domain"
)

// Filters narrows a catalog listing. Zero values mean "no filter".
type Filters struct {
	Query    string
	Category string
	Size     string
	Color    string
}

// Page is one page of catalog results plus the total page count.
type Page struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

type Repository interface {
	List(ctx context.Context, f Filters, page, limit int) (*Page, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
