package calculation

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs the accrual engine over a batch of records and assembles a Report.
type Aggregator struct {
	Engine   *AccrualEngine
	Title    string
	Currency string
	Workers  int // concurrent accruals; <= 0 means runtime.NumCPU()
	Logger   Logger
}

// NewAggregator creates an aggregator around engine.
func NewAggregator(engine *AccrualEngine) *Aggregator {
	return &Aggregator{
		Engine:   engine,
		Title:    domain.DefaultReportTitle,
		Currency: money.DefaultSymbol,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the aggregator. If nil is provided, a no-op logger is used.
func (ag *Aggregator) SetLogger(l Logger) {
	if l == nil {
		ag.Logger = NopLogger{}
		return
	}
	ag.Logger = l
}

type accrualOutcome struct {
	result *domain.TenantAccrualResult
	err    error
}

// Aggregate accrues every record and returns the report. Tenants appear in
// input order; skipped records are listed in Report.Skipped. The only error
// returned is cancellation of ctx.
func (ag *Aggregator) Aggregate(ctx context.Context, records []domain.TenantDepositRecord) (*domain.Report, error) {
	outcomes := make([]accrualOutcome, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ag.workers())
	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ag.Engine.Accrue(records[i])
			outcomes[i] = accrualOutcome{result: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregation cancelled: %w", err)
	}

	report := &domain.Report{
		ID:          idFunc(),
		Title:       ag.Title,
		Currency:    ag.Currency,
		GeneratedAt: nowFunc(),
		Rates:       ag.Engine.Rates,
		Tenants:     make([]domain.TenantAccrualResult, 0, len(records)),
	}

	var currents, interests, finals []decimal.Decimal
	for i, o := range outcomes {
		if o.err != nil {
			var skip *SkipError
			if !errors.As(o.err, &skip) {
				return nil, fmt.Errorf("record %d: %w", i, o.err)
			}
			ag.Logger.Warnf("skipping record %d: %v", i, skip)
			report.Skipped = append(report.Skipped, domain.SkippedRecord{
				Index:      i,
				TenantCode: records[i].TenantCode,
				TenantName: records[i].TenantName,
				Reason:     skip.Reason(),
			})
			continue
		}
		r := *o.result
		report.Tenants = append(report.Tenants, r)
		currents = append(currents, r.CurrentDeposit)
		interests = append(interests, r.TotalInterest)
		finals = append(finals, r.FinalDeposit)
	}

	report.TotalCurrentDeposit = money.SumRounded(currents...)
	report.TotalInterest = money.SumRounded(interests...)
	report.TotalFinalDeposit = money.SumRounded(finals...)

	ag.Logger.Infof("report %s: %d tenant(s) included, %d skipped, interest %s",
		report.ID, len(report.Tenants), len(report.Skipped), report.TotalInterest.StringFixed(2))
	return report, nil
}

func (ag *Aggregator) workers() int {
	if ag.Workers > 0 {
		return ag.Workers
	}
	return runtime.NumCPU()
}
