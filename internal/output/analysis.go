package output

import (
	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary holds headline statistics derived from a report.
type Summary struct {
	Tenants         int
	Skipped         int
	Periods         int
	AverageInterest decimal.Decimal
	LargestInterest decimal.Decimal
	LargestTenant   string // tenant code of LargestInterest; first wins on ties
}

// Summarize derives headline statistics from a report.
func Summarize(report *domain.Report) Summary {
	s := Summary{
		Tenants: len(report.Tenants),
		Skipped: len(report.Skipped),
	}
	for _, t := range report.Tenants {
		s.Periods += len(t.Periods)
		if s.LargestTenant == "" || t.TotalInterest.GreaterThan(s.LargestInterest) {
			s.LargestInterest = t.TotalInterest
			s.LargestTenant = t.TenantCode
		}
	}
	if s.Tenants > 0 {
		s.AverageInterest = report.TotalInterest.Div(decimal.NewFromInt(int64(s.Tenants))).Round(2)
	}
	return s
}
