package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
)

// ConsoleFormatter renders a plain-text summary followed by each tenant's period ledger.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	sym := report.Currency
	title := strings.ToUpper(report.Title)

	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(&buf, "Calculated as of %s\n", report.GeneratedAt.Format("02 January 2006"))
	fmt.Fprintln(&buf)
	for _, a := range GenerateAssumptions(report.Rates) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INTEREST SUMMARY FOR ALL TENANTS")
	fmt.Fprintln(&buf, strings.Repeat("-", 32))
	for _, t := range report.Tenants {
		fmt.Fprintf(&buf, "%-20s %-24s %-10s %-6s deposit=%s interest=%s final=%s\n",
			t.Property, t.TenantName, t.TenantCode, t.UnitNumber,
			FormatCurrency(sym, t.CurrentDeposit),
			FormatCurrency(sym, t.TotalInterest),
			FormatCurrency(sym, t.FinalDeposit),
		)
	}
	fmt.Fprintf(&buf, "TOTAL deposit=%s interest=%s final=%s\n",
		FormatCurrency(sym, report.TotalCurrentDeposit),
		FormatCurrency(sym, report.TotalInterest),
		FormatCurrency(sym, report.TotalFinalDeposit),
	)

	s := Summarize(report)
	if s.Tenants > 0 {
		fmt.Fprintf(&buf, "Tenants: %d  Periods: %d  Average interest: %s  Largest: %s (%s)\n",
			s.Tenants, s.Periods, FormatCurrency(sym, s.AverageInterest), FormatCurrency(sym, s.LargestInterest), s.LargestTenant)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&buf, "Records not included: %d\n", s.Skipped)
	}

	for _, t := range report.Tenants {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (Code: %s)\n", t.TenantName, t.TenantCode)
		fmt.Fprintf(&buf, "  Property: %s  Unit: %s\n", t.Property, t.UnitNumber)
		fmt.Fprintf(&buf, "  Initial Deposit: %s  Current Deposit: %s\n",
			FormatNullCurrency(sym, t.InitialDeposit), FormatCurrency(sym, t.CurrentDeposit))
		fmt.Fprintf(&buf, "  Occupation Date: %s  Vacating Date: %s\n",
			dateutil.FormatDisplay(t.OccupationDate), dateutil.FormatDisplay(t.VacatingDate))
		for _, p := range t.Periods {
			fmt.Fprintf(&buf, "  %s  %12s  %6s  %10s  %12s\n",
				FormatPeriod(p),
				FormatCurrency(sym, p.OpeningBalance),
				FormatRate(p.Rate),
				FormatCurrency(sym, p.Interest),
				FormatCurrency(sym, p.ClosingBalance),
			)
		}
		fmt.Fprintf(&buf, "  TOTAL %s interest, final %s\n",
			FormatCurrency(sym, t.TotalInterest), FormatCurrency(sym, t.FinalDeposit))
	}
	return buf.Bytes(), nil
}
