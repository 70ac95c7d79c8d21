package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/rpgo/deposit-interest/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Move-out export columns.
const (
	colProperty       = "Property"
	colTenantName     = "Tenant Name"
	colTenantCode     = "Tenant Code"
	colUnitNumber     = "Unit Number"
	colInitialDeposit = "Initial Deposit"
	colCurrentDeposit = "Current Deposit"
	colOccupationDate = "Occupation Date"
	colVacatingDate   = "Vacating Date"
)

var recordColumns = []string{
	colProperty, colTenantName, colTenantCode, colUnitNumber,
	colInitialDeposit, colCurrentDeposit, colOccupationDate, colVacatingDate,
}

// Tenant transaction export columns.
var transactionColumns = []string{
	"TenantCode", "ListOrTradingAsName", "TransactionCode", "TransactionRemarks",
	"EffectiveDate", "BalanceDate", "BalanceBf", "InclusiveAmount",
	"VacateDate", "LeaseStartDate", "MainUnitNo",
}

// LoadTenantRecords reads a move-out CSV export from filename.
func (ip *InputParser) LoadTenantRecords(filename string) ([]domain.TenantDepositRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()
	records, err := ip.ParseTenantRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return records, nil
}

// ParseTenantRecords reads move-out rows. Extra columns are ignored.
// Dates and amounts that cannot be parsed are left absent so the accrual
// engine skips the row instead of the whole file failing.
func (ip *InputParser) ParseTenantRecords(r io.Reader) ([]domain.TenantDepositRecord, error) {
	rows, err := readTable(r, recordColumns)
	if err != nil {
		return nil, err
	}
	records := make([]domain.TenantDepositRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.TenantDepositRecord{
			Property:       row.get(colProperty),
			TenantName:     row.get(colTenantName),
			TenantCode:     row.get(colTenantCode),
			UnitNumber:     row.get(colUnitNumber),
			InitialDeposit: lenientAmount(row.get(colInitialDeposit)),
			CurrentDeposit: lenientAmount(row.get(colCurrentDeposit)),
			OccupationDate: dateutil.ParseDate(row.get(colOccupationDate)),
			VacatingDate:   dateutil.ParseDate(row.get(colVacatingDate)),
		})
	}
	return records, nil
}

// LoadTransactions reads a tenant transaction CSV export from filename.
func (ip *InputParser) LoadTransactions(filename string) ([]domain.Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()
	txns, err := ip.ParseTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return txns, nil
}

// ParseTransactions reads tenant transaction rows.
func (ip *InputParser) ParseTransactions(r io.Reader) ([]domain.Transaction, error) {
	rows, err := readTable(r, transactionColumns)
	if err != nil {
		return nil, err
	}
	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, domain.Transaction{
			TenantCode:      row.get("TenantCode"),
			TradingName:     row.get("ListOrTradingAsName"),
			TransactionCode: row.get("TransactionCode"),
			Remarks:         row.get("TransactionRemarks"),
			EffectiveDate:   dateutil.ParseDate(row.get("EffectiveDate")),
			BalanceDate:     dateutil.ParseDate(row.get("BalanceDate")),
			BalanceBf:       lenientAmount(row.get("BalanceBf")),
			InclusiveAmount: lenientAmount(row.get("InclusiveAmount")),
			VacateDate:      dateutil.ParseDate(row.get("VacateDate")),
			LeaseStartDate:  dateutil.ParseDate(row.get("LeaseStartDate")),
			UnitNumber:      row.get("MainUnitNo"),
		})
	}
	return txns, nil
}

type tableRow struct {
	index  map[string]int
	fields []string
}

func (r tableRow) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// readTable reads a headed CSV and checks that every required column exists.
func readTable(r io.Reader, required []string) ([]tableRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var rows []tableRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if blankRow(fields) {
			continue
		}
		rows = append(rows, tableRow{index: index, fields: fields})
	}
	return rows, nil
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func lenientAmount(s string) decimal.NullDecimal {
	d, err := money.ParseAmount(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return d
}
