package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/deposit-interest/internal/calculation"
	"github.com/rpgo/deposit-interest/internal/output"
)

func (a *app) newInterestCmd() *cobra.Command {
	var (
		input       string
		format      string
		properties  []string
		month       string
		workers     int
		strictSpans bool
	)

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Calculate interest accrued on vacating tenants' deposits",
		Example: "  depositcalc interest --input moveouts.csv --format html\n" +
			"  depositcalc interest -i moveouts.csv -p \"Shell House\" --format all -o reports/",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			rates, err := cfg.Rates.RateSchedule()
			if err != nil {
				return err
			}

			if err := a.parser.ValidateProperties(cfg, properties); err != nil {
				return err
			}

			records, err := a.parser.LoadTenantRecords(input)
			if err != nil {
				return err
			}
			records = calculation.FilterByProperty(records, properties)
			a.log.WithFields(logrus.Fields{
				"file":       input,
				"records":    len(records),
				"properties": properties,
				"month":      month,
			}).Info("calculating deposit interest")

			engine := calculation.NewAccrualEngine(rates)
			engine.RejectInvertedSpans = cfg.Report.RejectInvertedSpans || strictSpans
			engine.SetLogger(a.logger("accrual"))

			agg := calculation.NewAggregator(engine)
			agg.Title = cfg.Report.Title
			if month != "" {
				agg.Title = fmt.Sprintf("%s (%s)", cfg.Report.Title, month)
			}
			agg.Currency = cfg.Report.CurrencySymbol
			agg.Workers = cfg.Report.Workers
			if cmd.Flags().Changed("workers") {
				agg.Workers = workers
			}
			agg.SetLogger(a.logger("aggregate"))

			report, err := agg.Aggregate(cmd.Context(), records)
			if err != nil {
				return err
			}

			paths, err := output.GenerateReport(report, format, a.outputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "move-outs CSV export")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format (see 'formats'), or 'all'")
	cmd.Flags().StringSliceVarP(&properties, "property", "p", nil, "only include these configured properties (repeatable)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "month label added to the report title")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent accruals (0 = one per CPU)")
	cmd.Flags().BoolVar(&strictSpans, "strict-spans", false, "skip records vacated before occupation instead of accruing nothing")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
