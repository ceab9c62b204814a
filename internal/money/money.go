// Package money handles BRL amounts. State is kept in integer centavos;
// decimals appear only at serialization boundaries so currency math never
// picks up binary-float drift.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FromDecimal converts a major-unit amount to centavos, rounding half-up.
func FromDecimal(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// ToDecimal converts centavos to a major-unit decimal with two places.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Percent takes pct percent of cents, rounded half-up to the centavo.
func Percent(cents int64, pct int) int64 {
	return decimal.New(cents, 0).
		Mul(decimal.New(int64(pct), 0)).
		Div(hundred).
		Round(0).
		IntPart()
}

// FormatBRL renders centavos in the fixed pt-BR locale: "R$ 1.234,56".
// Output is deterministic, byte for byte, for equal inputs.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	intPart := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		grouped.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	frac := cents % 100
	return "R$ " + sign + grouped.String() + "," + pad2(frac)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
