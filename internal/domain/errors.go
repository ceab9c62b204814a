package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCouponAlreadyApplied enforces the one-coupon-per-checkout rule.
	ErrCouponAlreadyApplied = errors.New("coupon already applied")

	// ErrCouponNotFoundOrInactive indicates the submitted code matched no
	// active coupon.
	ErrCouponNotFoundOrInactive = errors.New("coupon not found or inactive")

	// ErrSnapshotWrite marks a failed cart snapshot write. The in-memory
	// mutation stands; callers surface the failure and keep going.
	ErrSnapshotWrite = errors.New("cart snapshot write failed")
)

// ValidationError lists the checkout fields that were missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
