package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/deposit-interest/internal/domain"
)

// EarlyPayersCSV renders early payers as a CSV table.
func EarlyPayersCSV(payers []domain.EarlyPayer) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"TenantCode", "ListOrTradingAsName", "MainUnitNo", "InclusiveAmount"}); err != nil {
		return nil, err
	}
	for _, p := range payers {
		if err := w.Write([]string{p.TenantCode, p.TradingName, p.UnitNumber, p.Balance.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// EarlyPayersFilename names the export "<property>_<month>_early_payers.csv".
// Either part may be empty.
func EarlyPayersFilename(property, month string) string {
	parts := []string{}
	for _, p := range []string{property, month} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, "early_payers")
	return strings.Join(parts, "_") + ".csv"
}

// WriteEarlyPayers writes the early payers CSV into dir and returns its path.
func WriteEarlyPayers(payers []domain.EarlyPayer, dir, property, month string) (string, error) {
	data, err := EarlyPayersCSV(payers)
	if err != nil {
		return "", fmt.Errorf("render early payers: %w", err)
	}
	filename := filepath.Join(dir, EarlyPayersFilename(property, month))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
