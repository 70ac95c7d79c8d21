package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time { return dateutil.Date(y, m, d) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRecord(code, deposit string, occupation, vacating time.Time) domain.TenantDepositRecord {
	return domain.TenantDepositRecord{
		Property:       "Shell House",
		TenantName:     "Tenant " + code,
		TenantCode:     code,
		UnitNumber:     "101",
		InitialDeposit: decimal.NewNullDecimal(dec(deposit)),
		CurrentDeposit: decimal.NewNullDecimal(dec(deposit)),
		OccupationDate: &occupation,
		VacatingDate:   &vacating,
	}
}

type wantPeriod struct {
	start, end       time.Time
	opening, rate    string
	interest, closing string
	full             bool
}

func assertPeriods(t *testing.T, want []wantPeriod, got []domain.AccrualPeriod) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		p := got[i]
		assert.Equal(t, w.start, p.Start, "period %d start", i)
		assert.Equal(t, w.end, p.End, "period %d end", i)
		assert.Equal(t, w.opening, p.OpeningBalance.StringFixed(2), "period %d opening", i)
		assert.True(t, p.Rate.Equal(dec(w.rate)), "period %d rate %s want %s", i, p.Rate, w.rate)
		assert.Equal(t, w.interest, p.Interest.StringFixed(2), "period %d interest", i)
		assert.Equal(t, w.closing, p.ClosingBalance.StringFixed(2), "period %d closing", i)
		assert.Equal(t, w.full, p.FullYear, "period %d full year", i)
	}
}

func TestAccrue_Scenarios(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())

	tests := []struct {
		name          string
		deposit       string
		occupation    time.Time
		vacating      time.Time
		periods       []wantPeriod
		totalInterest string
		finalDeposit  string
	}{
		{
			name:       "Two full years across the rate change",
			deposit:    "10000.00",
			occupation: day(2022, 1, 1),
			vacating:   day(2024, 1, 1),
			periods: []wantPeriod{
				{day(2022, 1, 1), day(2023, 1, 1), "10000.00", "2", "200.00", "10200.00", true},
				{day(2023, 1, 1), day(2024, 1, 1), "10200.00", "3", "306.00", "10506.00", true},
			},
			totalInterest: "506.00",
			finalDeposit:  "10506.00",
		},
		{
			name:       "Single partial period of three months",
			deposit:    "10000.00",
			occupation: day(2023, 6, 1),
			vacating:   day(2023, 9, 1),
			periods: []wantPeriod{
				{day(2023, 6, 1), day(2023, 9, 1), "10000.00", "3", "75.00", "10075.00", false},
			},
			totalInterest: "75.00",
			finalDeposit:  "10075.00",
		},
		{
			name:       "Months plus leftover days",
			deposit:    "10000.00",
			occupation: day(2023, 1, 15),
			vacating:   day(2023, 3, 1),
			// 1/12 + 14/365 of a year at 3%: 36.5068...
			periods: []wantPeriod{
				{day(2023, 1, 15), day(2023, 3, 1), "10000.00", "3", "36.51", "10036.51", false},
			},
			totalInterest: "36.51",
			finalDeposit:  "10036.51",
		},
		{
			name:       "Full years then partial final period",
			deposit:    "10000.00",
			occupation: day(2021, 6, 1),
			vacating:   day(2023, 9, 1),
			periods: []wantPeriod{
				{day(2021, 6, 1), day(2022, 6, 1), "10000.00", "2", "200.00", "10200.00", true},
				{day(2022, 6, 1), day(2023, 6, 1), "10200.00", "2", "204.00", "10404.00", true},
				{day(2023, 6, 1), day(2023, 9, 1), "10404.00", "3", "78.03", "10482.03", false},
			},
			totalInterest: "482.03",
			finalDeposit:  "10482.03",
		},
		{
			name:       "Leap day occupation clamps to Feb 28",
			deposit:    "10000.00",
			occupation: day(2020, 2, 29),
			vacating:   day(2022, 3, 1),
			// final period is one day: 10404 * 2% / 365 = 0.570...
			periods: []wantPeriod{
				{day(2020, 2, 29), day(2021, 2, 28), "10000.00", "2", "200.00", "10200.00", true},
				{day(2021, 2, 28), day(2022, 2, 28), "10200.00", "2", "204.00", "10404.00", true},
				{day(2022, 2, 28), day(2022, 3, 1), "10404.00", "2", "0.57", "10404.57", false},
			},
			totalInterest: "404.57",
			finalDeposit:  "10404.57",
		},
		{
			name:       "Period starting the day before the boundary uses the lower rate",
			deposit:    "10000.00",
			occupation: day(2022, 12, 31),
			vacating:   day(2023, 12, 31),
			periods: []wantPeriod{
				{day(2022, 12, 31), day(2023, 12, 31), "10000.00", "2", "200.00", "10200.00", true},
			},
			totalInterest: "200.00",
			finalDeposit:  "10200.00",
		},
		{
			name:       "Three full years at the higher rate",
			deposit:    "10000.00",
			occupation: day(2023, 1, 1),
			vacating:   day(2026, 1, 1),
			periods: []wantPeriod{
				{day(2023, 1, 1), day(2024, 1, 1), "10000.00", "3", "300.00", "10300.00", true},
				{day(2024, 1, 1), day(2025, 1, 1), "10300.00", "3", "309.00", "10609.00", true},
				{day(2025, 1, 1), day(2026, 1, 1), "10609.00", "3", "318.27", "10927.27", true},
			},
			totalInterest: "927.27",
			finalDeposit:  "10927.27",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Accrue(newRecord("T1", tt.deposit, tt.occupation, tt.vacating))
			require.NoError(t, err)
			require.NotNil(t, res)
			assertPeriods(t, tt.periods, res.Periods)
			assert.Equal(t, tt.totalInterest, res.TotalInterest.StringFixed(2))
			assert.Equal(t, tt.finalDeposit, res.FinalDeposit.StringFixed(2))
		})
	}
}

func TestAccrue_PartialFraction(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	res, err := engine.Accrue(newRecord("T1", "10000", day(2023, 6, 1), day(2023, 9, 1)))
	require.NoError(t, err)
	require.Len(t, res.Periods, 1)
	assert.True(t, res.Periods[0].FractionOfYear.Equal(dec("0.25")), "got %s", res.Periods[0].FractionOfYear)

	res, err = engine.Accrue(newRecord("T1", "10000", day(2023, 1, 1), day(2024, 1, 1)))
	require.NoError(t, err)
	require.Len(t, res.Periods, 1)
	assert.True(t, res.Periods[0].FractionOfYear.Equal(decimal.NewFromInt(1)))
}

// TestAccrue_Invariants walks a grid of spans and checks contiguity and
// compounding on every ledger.
func TestAccrue_Invariants(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	starts := []time.Time{day(2018, 3, 31), day(2020, 2, 29), day(2021, 12, 31), day(2022, 7, 15), day(2023, 1, 1)}
	ends := []time.Time{day(2023, 1, 1), day(2023, 2, 28), day(2024, 2, 29), day(2025, 10, 31)}

	for _, s := range starts {
		for _, e := range ends {
			if !s.Before(e) {
				continue
			}
			res, err := engine.Accrue(newRecord("T", "8765.43", s, e))
			require.NoError(t, err)
			require.NotEmpty(t, res.Periods)

			assert.Equal(t, s, res.Periods[0].Start)
			assert.Equal(t, e, res.Periods[len(res.Periods)-1].End)
			assert.Equal(t, "8765.43", res.Periods[0].OpeningBalance.StringFixed(2))

			sum := decimal.Zero
			for i, p := range res.Periods {
				assert.True(t, p.Start.Before(p.End), "period %d empty", i)
				assert.True(t, p.ClosingBalance.Equal(p.OpeningBalance.Add(p.Interest).Round(2)), "period %d compounding", i)
				if i > 0 {
					prev := res.Periods[i-1]
					assert.Equal(t, prev.End, p.Start, "period %d contiguity", i)
					assert.True(t, prev.ClosingBalance.Equal(p.OpeningBalance), "period %d opening", i)
				}
				sum = sum.Add(p.Interest)
			}
			assert.True(t, res.TotalInterest.Equal(sum.Round(2)))
			assert.True(t, res.FinalDeposit.Equal(res.Periods[len(res.Periods)-1].ClosingBalance))
		}
	}
}

func TestAccrue_FullYearExactness(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	deposit := dec("12345.67")
	for n := 1; n <= 5; n++ {
		res, err := engine.Accrue(newRecord("T", deposit.String(), day(2023, 3, 1), day(2023+n, 3, 1)))
		require.NoError(t, err)
		require.Len(t, res.Periods, n)
		exact := deposit.Mul(dec("1.03").Pow(decimal.NewFromInt(int64(n))))
		diff := res.FinalDeposit.Sub(exact).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01").Mul(decimal.NewFromInt(int64(n)))),
			"n=%d final %s exact %s", n, res.FinalDeposit, exact)
	}
}

func TestAccrue_ZeroSpan(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	res, err := engine.Accrue(newRecord("T", "5000.00", day(2023, 5, 5), day(2023, 5, 5)))
	require.NoError(t, err)
	assert.NotNil(t, res.Periods)
	assert.Empty(t, res.Periods)
	assert.True(t, res.TotalInterest.IsZero())
	assert.Equal(t, "5000.00", res.FinalDeposit.StringFixed(2))
}

func TestAccrue_InvertedSpan(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	rec := newRecord("T9", "5000.00", day(2023, 5, 5), day(2022, 5, 5))

	res, err := engine.Accrue(rec)
	require.NoError(t, err)
	assert.Empty(t, res.Periods)
	assert.True(t, res.TotalInterest.IsZero())
	assert.Equal(t, "5000.00", res.FinalDeposit.StringFixed(2))

	engine.RejectInvertedSpans = true
	res, err = engine.Accrue(rec)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInvalidSpan))
	var skip *SkipError
	require.True(t, errors.As(err, &skip))
	assert.Equal(t, "T9", skip.TenantCode)
}

func TestAccrue_MissingFields(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())

	tests := []struct {
		name   string
		mutate func(*domain.TenantDepositRecord)
		field  string
	}{
		{"No occupation date", func(r *domain.TenantDepositRecord) { r.OccupationDate = nil }, "occupation date"},
		{"No vacating date", func(r *domain.TenantDepositRecord) { r.VacatingDate = nil }, "vacating date"},
		{"No current deposit", func(r *domain.TenantDepositRecord) { r.CurrentDeposit = decimal.NullDecimal{} }, "current deposit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord("T2", "1000", day(2022, 1, 1), day(2023, 1, 1))
			tt.mutate(&rec)
			res, err := engine.Accrue(rec)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))
			var skip *SkipError
			require.True(t, errors.As(err, &skip))
			assert.Equal(t, tt.field, skip.Field)
			assert.Equal(t, "missing required field: "+tt.field, skip.Reason())
		})
	}
}

func TestAccrue_MissingInitialDepositIsFine(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	rec := newRecord("T3", "1000", day(2022, 1, 1), day(2023, 1, 1))
	rec.InitialDeposit = decimal.NullDecimal{}
	res, err := engine.Accrue(rec)
	require.NoError(t, err)
	assert.False(t, res.InitialDeposit.Valid)
	assert.Equal(t, "20.00", res.TotalInterest.StringFixed(2))
}

func TestAccrue_NormalizesClockAndZone(t *testing.T) {
	engine := NewAccrualEngine(domain.DefaultRateSchedule())
	loc := time.FixedZone("SAST", 2*60*60)
	occ := time.Date(2022, 1, 1, 9, 30, 0, 0, loc)
	vac := time.Date(2024, 1, 1, 17, 0, 0, 0, loc)
	rec := newRecord("T4", "10000", occ, vac)
	res, err := engine.Accrue(rec)
	require.NoError(t, err)
	assert.Equal(t, day(2022, 1, 1), res.OccupationDate)
	assert.Equal(t, day(2024, 1, 1), res.VacatingDate)
	assert.Len(t, res.Periods, 2)
	assert.Equal(t, "506.00", res.TotalInterest.StringFixed(2))
}

func TestAccrue_CustomSchedule(t *testing.T) {
	rates := domain.RateSchedule{
		LowerRate:  dec("0.05"),
		HigherRate: dec("0.07"),
		Boundary:   day(2021, 7, 1),
	}
	engine := NewAccrualEngine(rates)
	res, err := engine.Accrue(newRecord("T5", "1000", day(2020, 7, 1), day(2022, 7, 1)))
	require.NoError(t, err)
	require.Len(t, res.Periods, 2)
	assert.Equal(t, "50.00", res.Periods[0].Interest.StringFixed(2))
	assert.Equal(t, "73.50", res.Periods[1].Interest.StringFixed(2))
	assert.Equal(t, "1123.50", res.FinalDeposit.StringFixed(2))
}
