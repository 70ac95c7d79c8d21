package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/deposit-interest/internal/calculation"
	"github.com/rpgo/deposit-interest/internal/output"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
)

func (a *app) newEarlyPayersCmd() *cobra.Command {
	var (
		input         string
		leaseCutoff   string
		receiptCutoff string
		property      string
		month         string
	)

	cmd := &cobra.Command{
		Use:   "early-payers",
		Short: "List occupying tenants whose account is settled or in credit",
		Example: "  depositcalc early-payers -i transactions.csv --lease-cutoff 01/06/2024 " +
			"--receipt-cutoff 2024-05-31 --property \"Shell House\" --month Jun",
		RunE: func(cmd *cobra.Command, args []string) error {
			lease := dateutil.ParseDate(leaseCutoff)
			if lease == nil {
				return fmt.Errorf("invalid --lease-cutoff %q: use dd/mm/yyyy or yyyy-mm-dd", leaseCutoff)
			}
			receipt := dateutil.ParseDate(receiptCutoff)
			if receipt == nil {
				return fmt.Errorf("invalid --receipt-cutoff %q: use dd/mm/yyyy or yyyy-mm-dd", receiptCutoff)
			}

			if property != "" {
				cfg, err := a.loadConfiguration()
				if err != nil {
					return err
				}
				if err := a.parser.ValidateProperties(cfg, []string{property}); err != nil {
					return err
				}
			}

			txns, err := a.parser.LoadTransactions(input)
			if err != nil {
				return err
			}
			payers := calculation.FindEarlyPayers(txns, *lease, *receipt)
			a.log.WithFields(logrus.Fields{
				"file":         input,
				"transactions": len(txns),
				"early_payers": len(payers),
			}).Info("early payers computed")

			path, err := output.WriteEarlyPayers(payers, a.outputDir, property, month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "tenant transactions CSV export")
	cmd.Flags().StringVar(&leaseCutoff, "lease-cutoff", "", "exclude leases starting on or after this date")
	cmd.Flags().StringVar(&receiptCutoff, "receipt-cutoff", "", "only count transactions effective before this date")
	cmd.Flags().StringVarP(&property, "property", "p", "", "configured property name used in the output file name")
	cmd.Flags().StringVarP(&month, "month", "m", "", "month label used in the output file name")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("lease-cutoff")
	_ = cmd.MarkFlagRequired("receipt-cutoff")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report output formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, a := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", a, output.NormalizeFormatName(a))
			}
			fmt.Fprintln(out, "  all (every format)")
		},
	}
}
