package output

import (
	"fmt"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/rpgo/deposit-interest/pkg/money"
)

// GenerateAssumptions lists the calculation basis rendered alongside a report.
func GenerateAssumptions(rates domain.RateSchedule) []string {
	boundary := dateutil.FormatDisplay(rates.Boundary)
	return []string{
		fmt.Sprintf("%s annual for periods starting before %s", money.FormatRate(money.Percent(rates.LowerRate)), boundary),
		fmt.Sprintf("%s annual for periods starting on or after %s", money.FormatRate(money.Percent(rates.HigherRate)), boundary),
		"Interest compounds on each anniversary of the occupation date",
		"Partial final period: whole months count 1/12 of a year, remaining days 1/365",
		"Interest is rounded to cents each period, half away from zero",
	}
}
