package domain

import "time"

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	PriceCents  int64          `json:"priceCents"`
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	StockBySize map[string]int `json:"stockBySize,omitempty"`
	Colors      []string       `json:"colors,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Keywords    []string       `json:"keywords,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
