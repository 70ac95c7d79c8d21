package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSchedule is the two-tier annual rate table: LowerRate applies to
// periods starting strictly before Boundary, HigherRate from Boundary on.
// Rates are fractions (0.02 = 2%).
type RateSchedule struct {
	LowerRate  decimal.Decimal `json:"lower_rate"`
	HigherRate decimal.Decimal `json:"higher_rate"`
	Boundary   time.Time       `json:"boundary"`
}

// DefaultRateSchedule returns 2% before 1 January 2023 and 3% from then on.
func DefaultRateSchedule() RateSchedule {
	return RateSchedule{
		LowerRate:  decimal.RequireFromString("0.02"),
		HigherRate: decimal.RequireFromString("0.03"),
		Boundary:   time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// RateFor returns the annual rate for a period starting at start.
func (rs RateSchedule) RateFor(start time.Time) decimal.Decimal {
	if start.Before(rs.Boundary) {
		return rs.LowerRate
	}
	return rs.HigherRate
}
