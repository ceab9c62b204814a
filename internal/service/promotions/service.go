// Package promotions serves the storefront settings document. Reads are
// best-effort: checkout must stay usable with an empty coupon list when the
// document is missing or the read fails.
package promotions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront-backend/internal/domain"
	promorepo "storefront-backend/internal/repository/promotions"
)

type Service struct {
	repo   promorepo.Repository
	logger *log.Logger
}

func New(repo promorepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Get returns the promotions document. A missing document or failed read
// degrades to empty defaults (inactive banner, no coupons), no retry.
func (s *Service) Get(ctx context.Context) domain.Promotions {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("promotions: get error=%v", err)
		}
		return domain.Promotions{Coupons: []domain.Coupon{}}
	}
	if doc.Coupons == nil {
		doc.Coupons = []domain.Coupon{}
	}
	return *doc
}

// Update replaces the promotions document (admin operation).
func (s *Service) Update(ctx context.Context, p domain.Promotions) error {
	for i, c := range p.Coupons {
		if strings.TrimSpace(c.Code) == "" {
			return fmt.Errorf("coupon %d: code required", i)
		}
		if c.DiscountPercent < 0 || c.DiscountPercent > 100 {
			return fmt.Errorf("coupon %q: discountPercent must be within [0,100]", c.Code)
		}
	}
	return s.repo.Update(ctx, p)
}
