package output

import (
	"strconv"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/rpgo/deposit-interest/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount with the report's currency symbol and 2 decimals.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		symbol = money.DefaultSymbol
	}
	return money.Format(symbol, amount)
}

// FormatNullCurrency renders an optional amount, blank when absent.
func FormatNullCurrency(symbol string, amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return FormatCurrency(symbol, amount.Decimal)
}

// FormatRate formats a percentage rate with 1 decimal.
func FormatRate(percent decimal.Decimal) string { return money.FormatRate(percent) }

// FormatPeriod renders a period as "dd/mm/yyyy to dd/mm/yyyy".
func FormatPeriod(p domain.AccrualPeriod) string {
	return dateutil.FormatDisplay(p.Start) + " to " + dateutil.FormatDisplay(p.End)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
