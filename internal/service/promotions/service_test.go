package promotions

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/domain"
)

type stubRepo struct {
	doc       *domain.Promotions
	getErr    error
	updated   *domain.Promotions
	updateErr error
}

func (s *stubRepo) Get(_ context.Context) (*domain.Promotions, error) {
	return s.doc, s.getErr
}

func (s *stubRepo) Update(_ context.Context, p domain.Promotions) error {
	s.updated = &p
	return s.updateErr
}

func TestGet_DegradesToEmptyDefaultsOnError(t *testing.T) {
	svc := New(&stubRepo{getErr: errors.New("db down")}, nil)

	got := svc.Get(context.Background())
	if len(got.Coupons) != 0 || got.Banner.Active {
		t.Fatalf("expected empty defaults, got %+v", got)
	}
}

func TestGet_MissingDocumentIsEmptyDefaults(t *testing.T) {
	svc := New(&stubRepo{getErr: domain.ErrNotFound}, nil)

	got := svc.Get(context.Background())
	if got.Coupons == nil || len(got.Coupons) != 0 {
		t.Fatalf("expected empty coupon list, got %+v", got.Coupons)
	}
}

func TestGet_PassesBannerThrough(t *testing.T) {
	doc := &domain.Promotions{
		Banner:  domain.Banner{Active: true, Text: "Promoção", TextColor: "#fff", BackgroundColor: "#c00"},
		Coupons: []domain.Coupon{{Code: "PROMO10", DiscountPercent: 10, Active: true}},
	}
	svc := New(&stubRepo{doc: doc}, nil)

	got := svc.Get(context.Background())
	if got.Banner != doc.Banner {
		t.Fatalf("banner not passed through: %+v", got.Banner)
	}
	if len(got.Coupons) != 1 {
		t.Fatalf("coupons missing: %+v", got.Coupons)
	}
}

func TestUpdate_ValidatesCoupons(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	err := svc.Update(context.Background(), domain.Promotions{
		Coupons: []domain.Coupon{{Code: "", DiscountPercent: 10}},
	})
	if err == nil {
		t.Fatal("expected error for empty code")
	}

	err = svc.Update(context.Background(), domain.Promotions{
		Coupons: []domain.Coupon{{Code: "X", DiscountPercent: 101}},
	})
	if err == nil {
		t.Fatal("expected error for out-of-range percent")
	}
	if repo.updated != nil {
		t.Fatal("invalid document must not reach the repository")
	}

	err = svc.Update(context.Background(), domain.Promotions{
		Coupons: []domain.Coupon{{Code: "PROMO10", DiscountPercent: 10, Active: true}},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("expected repository write")
	}
}
