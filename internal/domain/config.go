package domain

import (
	"fmt"

	"github.com/rpgo/deposit-interest/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Configuration is the top-level YAML configuration for a calculation run.
type Configuration struct {
	Rates      RateConfig   `yaml:"rates" json:"rates"`
	Report     ReportConfig `yaml:"report" json:"report"`
	Properties []string     `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// RateConfig is the serialized form of a RateSchedule.
type RateConfig struct {
	LowerRate    decimal.Decimal `yaml:"lower_rate" json:"lower_rate"`
	HigherRate   decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	BoundaryDate string          `yaml:"boundary_date" json:"boundary_date"` // dd/mm/yyyy or yyyy-mm-dd
}

// ReportConfig controls report assembly and rendering.
type ReportConfig struct {
	Title               string `yaml:"title" json:"title"`
	CurrencySymbol      string `yaml:"currency_symbol" json:"currency_symbol"`
	Workers             int    `yaml:"workers" json:"workers"` // 0 = one per CPU
	RejectInvertedSpans bool   `yaml:"reject_inverted_spans" json:"reject_inverted_spans"`
}

// DefaultReportTitle heads rendered reports when none is configured.
const DefaultReportTitle = "Tenant Deposit Interest Calculation"

// DefaultConfiguration returns the built-in rates and report settings.
func DefaultConfiguration() Configuration {
	rs := DefaultRateSchedule()
	return Configuration{
		Rates: RateConfig{
			LowerRate:    rs.LowerRate,
			HigherRate:   rs.HigherRate,
			BoundaryDate: rs.Boundary.Format(dateutil.ISOLayout),
		},
		Report: ReportConfig{
			Title:          DefaultReportTitle,
			CurrencySymbol: "R",
		},
		Properties: []string{"Rand Daily Mail", "Solly Sachs House", "Shell House"},
	}
}

// RateSchedule converts the rate section into a RateSchedule.
func (rc RateConfig) RateSchedule() (RateSchedule, error) {
	boundary := dateutil.ParseDate(rc.BoundaryDate)
	if boundary == nil {
		return RateSchedule{}, fmt.Errorf("invalid boundary date %q", rc.BoundaryDate)
	}
	return RateSchedule{
		LowerRate:  rc.LowerRate,
		HigherRate: rc.HigherRate,
		Boundary:   *boundary,
	}, nil
}
