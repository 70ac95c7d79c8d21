package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/deposit-interest/internal/calculation"
	"github.com/rpgo/deposit-interest/internal/config"
	"github.com/rpgo/deposit-interest/internal/domain"
)

// app holds the settings and logger shared by one root command and its subcommands.
type app struct {
	verbose    bool
	configFile string
	outputDir  string

	log    *logrus.Logger
	parser *config.InputParser
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{
		log:    logrus.New(),
		parser: config.NewInputParser(),
	}

	root := &cobra.Command{
		Use:           "depositcalc",
		Short:         "Tenant deposit interest and early payer reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			} else {
				a.log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML configuration file (defaults are built in)")
	root.PersistentFlags().StringVarP(&a.outputDir, "output-dir", "o", ".", "directory reports are written to")

	root.AddCommand(a.newInterestCmd(), a.newEarlyPayersCmd(), newFormatsCmd())
	return root
}

// loadConfiguration returns the configured settings, or the defaults when no file is given.
func (a *app) loadConfiguration() (*domain.Configuration, error) {
	if a.configFile == "" {
		cfg := domain.DefaultConfiguration()
		return &cfg, nil
	}
	cfg, err := a.parser.LoadFromFile(a.configFile)
	if err != nil {
		return nil, err
	}
	a.log.WithField("file", a.configFile).Debug("loaded configuration")
	return cfg, nil
}

func (a *app) logger(component string) calculation.Logger {
	return calculation.NewLogrusLogger(a.log, component)
}
