package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of a tenant transaction export. The first row per
// tenant is usually a balance brought forward with BalanceDate/BalanceBf set
// instead of EffectiveDate/InclusiveAmount.
type Transaction struct {
	TenantCode      string              `json:"tenant_code"`
	TradingName     string              `json:"trading_name"`
	TransactionCode string              `json:"transaction_code"`
	Remarks         string              `json:"remarks"`
	EffectiveDate   *time.Time          `json:"effective_date,omitempty"`
	BalanceDate     *time.Time          `json:"balance_date,omitempty"`
	BalanceBf       decimal.NullDecimal `json:"balance_bf"`
	InclusiveAmount decimal.NullDecimal `json:"inclusive_amount"`
	VacateDate      *time.Time          `json:"vacate_date,omitempty"`
	LeaseStartDate  *time.Time          `json:"lease_start_date,omitempty"`
	UnitNumber      string              `json:"unit_number"`
}

// EarlyPayer is a tenant whose summed account balance is at or below zero.
type EarlyPayer struct {
	TenantCode  string          `json:"tenant_code"`
	TradingName string          `json:"trading_name"`
	UnitNumber  string          `json:"unit_number"`
	Balance     decimal.Decimal `json:"balance"`
}
