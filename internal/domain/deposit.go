package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantDepositRecord identifies a tenant, their lease span and the deposit held.
// Absent dates are nil and absent amounts are invalid NullDecimals; such
// records are skipped by the accrual engine.
type TenantDepositRecord struct {
	Property       string              `json:"property"`
	TenantName     string              `json:"tenant_name"`
	TenantCode     string              `json:"tenant_code"`
	UnitNumber     string              `json:"unit_number"`
	InitialDeposit decimal.NullDecimal `json:"initial_deposit"`
	CurrentDeposit decimal.NullDecimal `json:"current_deposit"`
	OccupationDate *time.Time          `json:"occupation_date,omitempty"`
	VacatingDate   *time.Time          `json:"vacating_date,omitempty"`
}

// AccrualPeriod is one interest-compounding interval [Start, End).
type AccrualPeriod struct {
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Rate           decimal.Decimal `json:"rate"` // annual percentage, e.g. 3 for 3%
	FractionOfYear decimal.Decimal `json:"fraction_of_year"`
	FullYear       bool            `json:"full_year"`
	Interest       decimal.Decimal `json:"interest"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// TenantAccrualResult is the full accrual ledger for one tenant.
type TenantAccrualResult struct {
	Property       string              `json:"property"`
	TenantName     string              `json:"tenant_name"`
	TenantCode     string              `json:"tenant_code"`
	UnitNumber     string              `json:"unit_number"`
	InitialDeposit decimal.NullDecimal `json:"initial_deposit"`
	CurrentDeposit decimal.Decimal     `json:"current_deposit"`
	OccupationDate time.Time           `json:"occupation_date"`
	VacatingDate   time.Time           `json:"vacating_date"`

	Periods       []AccrualPeriod `json:"periods"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	FinalDeposit  decimal.Decimal `json:"final_deposit"`
}

// SkippedRecord notes a record left out of a report and why.
type SkippedRecord struct {
	Index      int    `json:"index"` // position in the input sequence
	TenantCode string `json:"tenant_code"`
	TenantName string `json:"tenant_name"`
	Reason     string `json:"reason"`
}

// Report is the per-tenant breakdown plus grand totals across all included tenants.
type Report struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Currency    string       `json:"currency"`
	GeneratedAt time.Time    `json:"generated_at"`
	Rates       RateSchedule `json:"rates"`

	Tenants []TenantAccrualResult `json:"tenants"`

	// Skipped is not shown by the default renderers.
	Skipped []SkippedRecord `json:"skipped,omitempty"`

	TotalCurrentDeposit decimal.Decimal `json:"total_current_deposit"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
	TotalFinalDeposit   decimal.Decimal `json:"total_final_deposit"`
}
