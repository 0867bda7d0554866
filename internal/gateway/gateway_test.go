package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"20", 2000},
		{"19.99", 1999},
		{"0.5", 50},
		{"1250", 125000},
		{"0", 0},
	}
	for _, tc := range cases {
		in, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := MinorUnits(in); got != tc.want {
			t.Fatalf("MinorUnits(%s) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
