package calculation

import (
	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/rpgo/deposit-interest/pkg/money"
	"github.com/shopspring/decimal"
)

// Partial periods count whole months as 1/12 of a year and leftover days as
// 1/365. Both terms are expressed over the common denominator 12*365 so the
// only division happens last.
var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
	yearBasis     = monthsPerYear.Mul(daysPerYear)
	one           = decimal.NewFromInt(1)
)

// AccrualEngine splits a tenancy into anniversary periods and compounds the
// deposit across them using a two-tier rate schedule.
type AccrualEngine struct {
	Rates domain.RateSchedule
	// RejectInvertedSpans skips records vacated before occupation with
	// ErrInvalidSpan. When false they accrue zero periods.
	RejectInvertedSpans bool
	Logger              Logger
}

// NewAccrualEngine creates an engine for the given rate schedule.
func NewAccrualEngine(rates domain.RateSchedule) *AccrualEngine {
	return &AccrualEngine{
		Rates:  rates,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ae *AccrualEngine) SetLogger(l Logger) {
	if l == nil {
		ae.Logger = NopLogger{}
		return
	}
	ae.Logger = l
}

// Accrue computes the period ledger for one record. Records that cannot be
// accrued return a *SkipError; no other error is produced.
func (ae *AccrualEngine) Accrue(rec domain.TenantDepositRecord) (*domain.TenantAccrualResult, error) {
	if field := missingField(rec); field != "" {
		return nil, &SkipError{TenantCode: rec.TenantCode, Field: field, Err: ErrMissingRequiredField}
	}

	occupation := dateutil.Civil(*rec.OccupationDate)
	vacating := dateutil.Civil(*rec.VacatingDate)
	if ae.RejectInvertedSpans && vacating.Before(occupation) {
		return nil, &SkipError{TenantCode: rec.TenantCode, Err: ErrInvalidSpan}
	}

	running := rec.CurrentDeposit.Decimal
	periods := []domain.AccrualPeriod{}
	interests := []decimal.Decimal{}

	cursor := occupation
	for cursor.Before(vacating) {
		anniversary := dateutil.AddYears(cursor, 1)
		end := dateutil.MinTime(anniversary, vacating)
		fullYear := !anniversary.After(vacating)
		rate := ae.Rates.RateFor(cursor)

		var fraction, raw decimal.Decimal
		if fullYear {
			fraction = one
			raw = running.Mul(rate)
		} else {
			units := yearUnits(dateutil.Diff(cursor, end))
			fraction = units.Div(yearBasis)
			raw = running.Mul(rate).Mul(units).Div(yearBasis)
		}

		interest := money.RoundCents(raw)
		next := running.Add(interest)
		periods = append(periods, domain.AccrualPeriod{
			Start:          cursor,
			End:            end,
			OpeningBalance: money.RoundCents(running),
			Rate:           money.Percent(rate),
			FractionOfYear: fraction,
			FullYear:       fullYear,
			Interest:       interest,
			ClosingBalance: money.RoundCents(next),
		})
		interests = append(interests, interest)

		running = next
		cursor = anniversary
		// an anniversary landing exactly on the vacating date ends the ledger
		if !cursor.Before(vacating) {
			break
		}
	}

	ae.Logger.Debugf("accrued %d period(s) for tenant %s", len(periods), rec.TenantCode)

	return &domain.TenantAccrualResult{
		Property:       rec.Property,
		TenantName:     rec.TenantName,
		TenantCode:     rec.TenantCode,
		UnitNumber:     rec.UnitNumber,
		InitialDeposit: rec.InitialDeposit,
		CurrentDeposit: rec.CurrentDeposit.Decimal,
		OccupationDate: occupation,
		VacatingDate:   vacating,
		Periods:        periods,
		TotalInterest:  money.SumRounded(interests...),
		FinalDeposit:   money.RoundCents(running),
	}, nil
}

// yearUnits expresses a calendar delta in 1/(12*365) year units.
func yearUnits(d dateutil.Delta) decimal.Decimal {
	return decimal.NewFromInt(int64(d.Years)).Mul(yearBasis).
		Add(decimal.NewFromInt(int64(d.Months)).Mul(daysPerYear)).
		Add(decimal.NewFromInt(int64(d.Days)).Mul(monthsPerYear))
}

func missingField(rec domain.TenantDepositRecord) string {
	switch {
	case rec.OccupationDate == nil:
		return "occupation date"
	case rec.VacatingDate == nil:
		return "vacating date"
	case !rec.CurrentDeposit.Valid:
		return "current deposit"
	}
	return ""
}
