// Package catalog exposes the product catalog to the storefront. Catalog
// reads are best-effort: a failed repository read degrades to an empty page
// instead of blocking the cart or checkout.
package catalog

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
)

const (
	defaultLimit = 12
	maxLimit     = 100
)

type Service struct {
	repo   productrepo.Repository
	logger *log.Logger
}

func New(repo productrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Search lists a catalog page. Never fails: a repository error is logged
// and an empty page is returned, no retry.
func (s *Service) Search(ctx context.Context, f productrepo.Filters, page, limit int) *productrepo.Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := s.repo.List(ctx, f, page, limit)
	if err != nil {
		s.logger.Printf("catalog: list page=%d error=%v", page, err)
		return &productrepo.Page{Items: []domain.Product{}, Page: page, Limit: limit}
	}
	if result.Items == nil {
		result.Items = []domain.Product{}
	}
	return result
}

// Get fetches a single product. Unlike Search this propagates errors: a
// missing product is a real not-found signal for the caller.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Save upserts a product (admin CRUD).
func (s *Service) Save(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("name required")
	}
	if p.PriceCents <= 0 {
		return nil, errors.New("price must be positive")
	}
	return s.repo.Upsert(ctx, p)
}

// Delete removes a product (admin CRUD).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
