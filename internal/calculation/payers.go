package calculation

import (
	"sort"
	"time"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// BroughtForwardCode labels opening-balance rows that carry no transaction code.
const BroughtForwardCode = "b/f"

type payerKey struct {
	code, name, unit string
}

// NormalizeTransaction fills the gaps left by balance brought forward rows:
// blank code becomes "b/f", a missing effective date takes the balance date
// and a missing amount takes the balance brought forward.
func NormalizeTransaction(tx domain.Transaction) domain.Transaction {
	if tx.TransactionCode == "" {
		tx.TransactionCode = BroughtForwardCode
	}
	if tx.EffectiveDate == nil {
		tx.EffectiveDate = tx.BalanceDate
	}
	if !tx.InclusiveAmount.Valid {
		tx.InclusiveAmount = tx.BalanceBf
	}
	return tx
}

// FindEarlyPayers returns the occupying tenants whose account nets to zero or
// credit. Only leases starting strictly before leaseCutoff, with no vacate
// date, are considered, and only transactions effective strictly before
// receiptCutoff are summed. Results are sorted by tenant code, name and unit.
func FindEarlyPayers(txns []domain.Transaction, leaseCutoff, receiptCutoff time.Time) []domain.EarlyPayer {
	leaseCutoff = dateutil.Civil(leaseCutoff)
	receiptCutoff = dateutil.Civil(receiptCutoff)

	sums := map[payerKey]decimal.Decimal{}
	for _, raw := range txns {
		tx := NormalizeTransaction(raw)
		if tx.LeaseStartDate == nil || !dateutil.Civil(*tx.LeaseStartDate).Before(leaseCutoff) {
			continue
		}
		if tx.VacateDate != nil {
			continue
		}
		if tx.EffectiveDate == nil || !dateutil.Civil(*tx.EffectiveDate).Before(receiptCutoff) {
			continue
		}
		k := payerKey{tx.TenantCode, tx.TradingName, tx.UnitNumber}
		amount := decimal.Zero
		if tx.InclusiveAmount.Valid {
			amount = tx.InclusiveAmount.Decimal
		}
		sums[k] = sums[k].Add(amount)
	}

	payers := make([]domain.EarlyPayer, 0, len(sums))
	for k, total := range sums {
		if total.GreaterThan(decimal.Zero) {
			continue
		}
		payers = append(payers, domain.EarlyPayer{
			TenantCode:  k.code,
			TradingName: k.name,
			UnitNumber:  k.unit,
			Balance:     total,
		})
	}
	sort.Slice(payers, func(i, j int) bool {
		a, b := payers[i], payers[j]
		if a.TenantCode != b.TenantCode {
			return a.TenantCode < b.TenantCode
		}
		if a.TradingName != b.TradingName {
			return a.TradingName < b.TradingName
		}
		return a.UnitNumber < b.UnitNumber
	})
	return payers
}
