// Package pricing computes checkout totals. Every function is pure and
// operates in centavos.
package pricing

import (
	"storefront-backend/internal/domain"
	"storefront-backend/internal/money"
)

// Subtotal sums unit price times quantity over all items.
func Subtotal(items []domain.LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.TotalCents()
	}
	return sum
}

// Discount returns the coupon reduction for the subtotal, rounded half-up
// to the centavo. A nil or inactive coupon yields zero.
func Discount(subtotalCents int64, coupon *domain.Coupon) int64 {
	if coupon == nil || !coupon.Active {
		return 0
	}
	return money.Percent(subtotalCents, coupon.DiscountPercent)
}

// Total is the subtotal minus the discount, floored at zero.
func Total(subtotalCents, discountCents int64) int64 {
	total := subtotalCents - discountCents
	if total < 0 {
		return 0
	}
	return total
}
