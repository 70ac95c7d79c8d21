package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/deposit-interest/internal/config"
	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/internal/output"
)

func minimalReport() *domain.Report {
	return &domain.Report{
		ID:                  "r",
		Title:               "T",
		Currency:            "R",
		GeneratedAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Rates:               domain.DefaultRateSchedule(),
		TotalCurrentDeposit: stddec.Zero,
		TotalInterest:       stddec.Zero,
		TotalFinalDeposit:   stddec.Zero,
	}
}

func TestSaveConfiguration(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.Report.Workers = 6
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(&cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		t.Fatalf("reload saved configuration: %v", err)
	}
	if loaded.Report.Workers != 6 || !loaded.Rates.HigherRate.Equal(cfg.Rates.HigherRate) || loaded.Rates.BoundaryDate != cfg.Rates.BoundaryDate {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReport(minimalReport(), "summary", dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "deposit_interest_20240102_030405.csv" {
		t.Fatalf("unexpected paths %v", paths)
	}

	paths, err = output.GenerateReport(minimalReport(), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(paths) != len(output.AvailableFormatterNames()) {
		t.Fatalf("expected one file per formatter, got %v", paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing output %s: %v", p, err)
		}
	}

	_, err = output.GenerateReport(minimalReport(), "pdf", dir)
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteEarlyPayers(t *testing.T) {
	payers := []domain.EarlyPayer{{TenantCode: "A1", TradingName: "Alpha", UnitNumber: "3", Balance: stddec.NewFromInt(-500)}}
	path, err := output.WriteEarlyPayers(payers, t.TempDir(), "Shell House", "Jun")
	if err != nil {
		t.Fatalf("WriteEarlyPayers: %v", err)
	}
	if filepath.Base(path) != "Shell House_Jun_early_payers.csv" {
		t.Fatalf("unexpected filename %s", path)
	}
	b, _ := os.ReadFile(path)
	want := "TenantCode,ListOrTradingAsName,MainUnitNo,InclusiveAmount\nA1,Alpha,3,-500.00\n"
	if string(b) != want {
		t.Fatalf("unexpected content:\n%s", b)
	}
	if got := output.EarlyPayersFilename("", "Jun"); got != "Jun_early_payers.csv" {
		t.Fatalf("EarlyPayersFilename = %q", got)
	}
}
