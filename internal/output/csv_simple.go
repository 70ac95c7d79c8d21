package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/deposit-interest/internal/domain"
)

// CSVSummarizer implements the interest summary export (one row per tenant, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Property", "Tenant Name", "Tenant Code", "Unit Number", "Current Deposit", "Total Interest", "Final Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range report.Tenants {
		row := []string{
			t.Property,
			t.TenantName,
			t.TenantCode,
			t.UnitNumber,
			t.CurrentDeposit.StringFixed(2),
			t.TotalInterest.StringFixed(2),
			t.FinalDeposit.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
