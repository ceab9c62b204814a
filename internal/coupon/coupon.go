// Package coupon validates discount codes at checkout. At most one coupon
// may be applied per checkout session, and once applied it stays applied.
package coupon

import (
	"strings"

	"storefront-backend/internal/domain"
)

// Apply matches code against the available coupons and returns the coupon
// to apply. It fails with domain.ErrCouponAlreadyApplied when a coupon is
// already in effect, and with domain.ErrCouponNotFoundOrInactive when the
// code matches no active coupon. Matching is case-insensitive. Apply has no
// side effects; the caller stores the result.
func Apply(code string, available []domain.Coupon, applied *domain.Coupon) (*domain.Coupon, error) {
	if applied != nil {
		return nil, domain.ErrCouponAlreadyApplied
	}
	code = strings.TrimSpace(code)
	for _, c := range available {
		if c.Active && strings.EqualFold(c.Code, code) {
			matched := c
			return &matched, nil
		}
	}
	return nil, domain.ErrCouponNotFoundOrInactive
}
