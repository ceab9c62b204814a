package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"59.90", 5990},
		{"39.9", 3990},
		{"0", 0},
		{"1234.567", 123457},
		{"0.005", 1},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := FromDecimal(d); got != tc.want {
			t.Errorf("FromDecimal(%s) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToDecimalRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 5990, 15970, 123456789} {
		if got := FromDecimal(ToDecimal(cents)); got != cents {
			t.Errorf("round trip %d = %d", cents, got)
		}
	}
	if s := ToDecimal(5990).String(); s != "59.9" {
		t.Errorf("ToDecimal(5990) = %s", s)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		cents int64
		pct   int
		want  int64
	}{
		{15970, 10, 1597},
		{125, 10, 13},  // 12.5 rounds half-up
		{124, 10, 12},  // 12.4 rounds down
		{9990, 0, 0},
		{9990, 100, 9990},
		{33, 33, 11}, // 10.89 rounds to 11
	}
	for _, tc := range cases {
		if got := Percent(tc.cents, tc.pct); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.cents, tc.pct, got, tc.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{5990, "R$ 59,90"},
		{15970, "R$ 159,70"},
		{14373, "R$ 143,73"},
		{123456, "R$ 1.234,56"},
		{123456789, "R$ 1.234.567,89"},
		{-5990, "R$ -59,90"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.cents); got != tc.want {
			t.Errorf("FormatBRL(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
