package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
)

// CSVDetailedExporter provides one row per accrual period per tenant.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "periods.csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Tenant Code", "Tenant Name", "Period", "Period Start", "Period End", "Full Year", "Deposit at Start", "Rate", "Interest Earned", "Deposit After Interest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range report.Tenants {
		for i, p := range t.Periods {
			row := []string{
				t.TenantCode,
				t.TenantName,
				intToString(i + 1),
				dateutil.FormatDisplay(p.Start),
				dateutil.FormatDisplay(p.End),
				boolToString(p.FullYear),
				p.OpeningBalance.StringFixed(2),
				p.Rate.StringFixed(1),
				p.Interest.StringFixed(2),
				p.ClosingBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
