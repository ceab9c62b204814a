package domain

// LineItem is one product+size entry in the cart. The display snapshot is
// captured at add time so later catalog edits never rewrite cart history.
type LineItem struct {
	ProductID      string      `json:"productId"`
	VariantKey     string      `json:"variantKey"`
	UnitPriceCents int64       `json:"unitPriceCents"`
	Quantity       int         `json:"quantity"`
	Display        LineDisplay `json:"displaySnapshot"`
}

type LineDisplay struct {
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// TotalCents is the line total: unit price times quantity.
func (li LineItem) TotalCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}
