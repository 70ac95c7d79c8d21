package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol prefixed to rendered amounts.
const DefaultSymbol = "R"

var hundred = decimal.NewFromInt(100)

// RoundCents rounds an amount to 2 decimal places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SumRounded adds the amounts and rounds the total to cents.
func SumRounded(amounts ...decimal.Decimal) decimal.Decimal {
	return RoundCents(decimal.Sum(decimal.Zero, amounts...))
}

// ParseAmount parses a currency amount as found in exported spreadsheets.
// Blank input is a null amount, not an error. A leading currency symbol,
// spaces and comma thousands separators are tolerated.
func ParseAmount(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimLeft(s, "R$€£ ")
	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if neg {
		d = d.Neg()
	}
	return decimal.NewNullDecimal(d), nil
}

// Format renders an amount with a leading symbol and 2 decimals, no separators.
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatRate renders a percentage rate with 1 decimal (3 -> "3.0%").
func FormatRate(percent decimal.Decimal) string {
	return percent.StringFixed(1) + "%"
}

// Percent converts a fractional rate to a percentage (0.02 -> 2).
func Percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}
