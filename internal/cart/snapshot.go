package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/money"
)

// snapshotLine is the persisted wire form of a line item. Unit prices
// travel as major-unit decimals; in memory they stay in centavos.
type snapshotLine struct {
	ProductID       string             `json:"productId"`
	VariantKey      string             `json:"variantKey"`
	UnitPrice       decimal.Decimal    `json:"unitPrice"`
	Quantity        int                `json:"quantity"`
	DisplaySnapshot domain.LineDisplay `json:"displaySnapshot"`
}

func marshalSnapshot(items []domain.LineItem) ([]byte, error) {
	lines := make([]snapshotLine, 0, len(items))
	for _, li := range items {
		lines = append(lines, snapshotLine{
			ProductID:       li.ProductID,
			VariantKey:      li.VariantKey,
			UnitPrice:       money.ToDecimal(li.UnitPriceCents),
			Quantity:        li.Quantity,
			DisplaySnapshot: li.Display,
		})
	}
	return json.Marshal(lines)
}

func unmarshalSnapshot(data []byte) ([]domain.LineItem, error) {
	var lines []snapshotLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, 0, len(lines))
	for _, ln := range lines {
		items = append(items, domain.LineItem{
			ProductID:      ln.ProductID,
			VariantKey:     ln.VariantKey,
			UnitPriceCents: money.FromDecimal(ln.UnitPrice),
			Quantity:       ln.Quantity,
			Display:        ln.DisplaySnapshot,
		})
	}
	return items, nil
}
