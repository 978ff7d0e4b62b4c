package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lendkit/lendkit/pkg/calc"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: console
output:
  format: csv
server:
  address: ":9090"
  maxBodyBytes: 1024
jobs:
  - name: House
    type: amortization
    amortization:
      loanAmount: 100000
      interestRate: 6.0
      termYears: 30
      startDate: "2023-01-01"
  - name: Cards
    type: debt-consolidation
    debtconsolidation:
      debts:
        - name: Card A
          balance: 5000
          interestRate: 20.0
          minPayment: 150
      newLoanRate: 8.0
      newLoanTermMonths: 60
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
	if conf.Server.Address != ":9090" || conf.Server.MaxBodyBytes != 1024 {
		t.Errorf("Server = %+v, expected :9090/1024", conf.Server)
	}

	if len(conf.Jobs) != 2 {
		t.Fatalf("len(Jobs) = %d, expected 2", len(conf.Jobs))
	}

	house := conf.Jobs[0]
	if house.Name != "House" || house.Type != "amortization" {
		t.Errorf("Jobs[0] = %s/%s, expected House/amortization", house.Name, house.Type)
	}
	if house.Amortization == nil {
		t.Fatal("Jobs[0].Amortization = nil, expected decoded inputs")
	}
	if house.Amortization.LoanAmount != 100000 || house.Amortization.TermYears != 30 {
		t.Errorf("Amortization inputs = %+v, expected 100000/30", house.Amortization)
	}
	if house.Amortization.StartDate != "2023-01-01" {
		t.Errorf("StartDate = %s, expected 2023-01-01", house.Amortization.StartDate)
	}

	cards := conf.Jobs[1]
	if cards.DebtConsolidation == nil {
		t.Fatal("Jobs[1].DebtConsolidation = nil, expected decoded inputs")
	}
	if len(cards.DebtConsolidation.Debts) != 1 || cards.DebtConsolidation.Debts[0].Balance != 5000 {
		t.Errorf("Debts = %+v, expected one 5000 balance", cards.DebtConsolidation.Debts)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadConfiguration() error = nil, expected an error for a missing file")
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := writeConfigFile(t, "jobs: [unclosed\n")
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("LoadConfiguration() error = nil, expected a parse error")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedWarnings int
		expectedContains string
	}{
		{
			name:             "No jobs",
			conf:             Configuration{},
			expectedWarnings: 1,
			expectedContains: "no jobs configured",
		},
		{
			name:             "Unknown job type",
			conf:             Configuration{Jobs: []Job{{Name: "Mystery", Type: "bogus"}}},
			expectedWarnings: 1,
			expectedContains: `unknown job type "bogus"`,
		},
		{
			name:             "Missing inputs",
			conf:             Configuration{Jobs: []Job{{Name: "House", Type: "amortization"}}},
			expectedWarnings: 1,
			expectedContains: "missing amortization inputs",
		},
		{
			name: "Non-positive loan amount",
			conf: Configuration{Jobs: []Job{{
				Name:         "House",
				Type:         "amortization",
				Amortization: &calc.AmortizationInputs{InterestRate: 6, TermYears: 30},
			}}},
			expectedWarnings: 1,
			expectedContains: "non-positive loan amount",
		},
		{
			name: "Valid job",
			conf: Configuration{Jobs: []Job{{
				Name:         "House",
				Type:         "amortization",
				Amortization: &calc.AmortizationInputs{LoanAmount: 100000, InterestRate: 6, TermYears: 30},
			}}},
			expectedWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()

			if len(warnings) != tt.expectedWarnings {
				t.Fatalf("len(warnings) = %d, expected %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
			if tt.expectedContains != "" && !strings.Contains(warnings[0], tt.expectedContains) {
				t.Errorf("warnings[0] = %q, expected to contain %q", warnings[0], tt.expectedContains)
			}
		})
	}
}

func TestValidateConfigurationUnnamedJob(t *testing.T) {
	conf := Configuration{Jobs: []Job{{Type: "income"}}}
	warnings := conf.ValidateConfiguration()

	if len(warnings) != 1 || !strings.Contains(warnings[0], "job 1") {
		t.Errorf("warnings = %v, expected the positional job label", warnings)
	}
}

func TestServerDefaults(t *testing.T) {
	var conf Configuration
	if got := conf.ServerAddress(); got != ":8080" {
		t.Errorf("ServerAddress() = %s, expected :8080", got)
	}
	if got := conf.MaxBodyBytes(); got != 256*1024 {
		t.Errorf("MaxBodyBytes() = %d, expected 262144", got)
	}

	conf.Server = ServerConfig{Address: ":9999", MaxBodyBytes: 512}
	if got := conf.ServerAddress(); got != ":9999" {
		t.Errorf("ServerAddress() = %s, expected :9999", got)
	}
	if got := conf.MaxBodyBytes(); got != 512 {
		t.Errorf("MaxBodyBytes() = %d, expected 512", got)
	}
}
