// Package order validates checkout inputs and composes the final order
// record plus its handoff message.
package order

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/money"
	"storefront-backend/internal/pricing"
)

// Composer builds immutable orders. The clock and ID source are injectable
// for tests.
type Composer struct {
	now   func() time.Time
	newID func() string
}

func NewComposer() *Composer {
	return &Composer{now: time.Now, newID: uuid.NewString}
}

// Result pairs the order with its rendered handoff message.
type Result struct {
	Order   domain.Order
	Message string
}

// ValidateCheckoutInputs reports which of the mandatory checkout fields
// (name, phone, paymentMethod) are missing or empty. Email and taxId are
// optional.
func ValidateCheckoutInputs(info domain.CustomerInfo, method domain.PaymentMethod) error {
	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Phone) == "" {
		missing = append(missing, "phone")
	}
	if method == "" {
		missing = append(missing, "paymentMethod")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

// Compose validates the checkout inputs, prices the items, and produces the
// order with its message. On validation failure no order is produced.
func (c *Composer) Compose(info domain.CustomerInfo, items []domain.LineItem, coupon *domain.Coupon, method domain.PaymentMethod) (*Result, error) {
	if err := ValidateCheckoutInputs(info, method); err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(items)
	discount := pricing.Discount(subtotal, coupon)
	total := pricing.Total(subtotal, discount)

	copied := make([]domain.LineItem, len(items))
	copy(copied, items)

	ord := domain.Order{
		ID:            c.newID(),
		Customer:      info,
		Items:         copied,
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    total,
		PaymentMethod: method,
		Coupon:        coupon,
		CreatedAt:     c.now(),
	}

	return &Result{Order: ord, Message: renderMessage(ord)}, nil
}

// renderMessage produces the handoff text. The format is deterministic and
// locale-fixed (pt-BR, BRL): equal inputs yield byte-identical output.
func renderMessage(o domain.Order) string {
	var b strings.Builder

	b.WriteString("*Novo pedido*\n\n")
	b.WriteString("Cliente: " + o.Customer.Name + "\n")
	b.WriteString("Telefone: " + o.Customer.Phone + "\n")
	if o.Customer.Email != "" {
		b.WriteString("Email: " + o.Customer.Email + "\n")
	}
	if o.Customer.TaxID != "" {
		b.WriteString("CPF/CNPJ: " + o.Customer.TaxID + "\n")
	}

	b.WriteString("\nItens:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s (%s) x%d - %s\n",
			it.Display.Name, it.VariantKey, it.Quantity, money.FormatBRL(it.TotalCents()))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", money.FormatBRL(o.SubtotalCents))
	if o.Coupon != nil {
		fmt.Fprintf(&b, "Desconto (%s): %s\n", o.Coupon.Code, money.FormatBRL(o.DiscountCents))
	}
	fmt.Fprintf(&b, "Total: %s\n", money.FormatBRL(o.TotalCents))

	fmt.Fprintf(&b, "\nPagamento: %s", o.PaymentMethod)

	return b.String()
}

// WhatsAppLink renders the wa.me handoff target for the message. Spaces are
// escaped as %20; wa.me does not decode '+' as space.
func WhatsAppLink(recipient, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + recipient + "?text=" + encoded
}
