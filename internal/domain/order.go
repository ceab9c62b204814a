package domain

import "time"

// PaymentMethod is the fixed set of methods accepted at checkout.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
	PaymentCash PaymentMethod = "dinheiro"
)

// ParsePaymentMethod maps a wire value onto the fixed set.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentPix, PaymentCard, PaymentCash:
		return PaymentMethod(s), true
	}
	return "", false
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	TaxID string `json:"taxId,omitempty"`
}

// Order is the finalized record produced at a successful checkout
// submission. It is never mutated after creation and not persisted here;
// handoff to fulfillment is external.
type Order struct {
	ID            string        `json:"id"`
	Customer      CustomerInfo  `json:"customer"`
	Items         []LineItem    `json:"items"`
	SubtotalCents int64         `json:"subtotalCents"`
	DiscountCents int64         `json:"discountCents"`
	TotalCents    int64         `json:"totalCents"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Coupon        *Coupon       `json:"coupon,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
