package domain

// Coupon is a named percentage discount. Codes match case-insensitively.
type Coupon struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	Active          bool   `json:"isActive"`
}

// Promotions is the storefront settings document: a display banner (passed
// through untouched) and the coupon list consumed at checkout.
type Promotions struct {
	Banner  Banner   `json:"banner"`
	Coupons []Coupon `json:"coupons"`
}

type Banner struct {
	Active          bool   `json:"isActive"`
	Text            string `json:"text,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}
