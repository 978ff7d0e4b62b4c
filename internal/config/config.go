// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/lendkit/lendkit/pkg/calc"
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the lendkit CLI.
type Configuration struct {
	Jobs    []Job
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the JSON API server options.
type ServerConfig struct {
	Address      string `yaml:"address,omitempty"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes,omitempty"`
}

// Job names one calculator run. Exactly one of the input blocks should be
// set, matching Type.
type Job struct {
	Name string
	Type string

	Amortization      *calc.AmortizationInputs
	APR               *calc.APRInputs
	MortgageAPR       *calc.MortgageAPRInputs
	HELOC             *calc.HELOCInputs
	CreditCard        *calc.CreditCardInputs
	DebtConsolidation *calc.ConsolidationInputs
	EarlyPayoff       *calc.EarlyPayoffInputs
	Prepayment        *calc.PrepaymentInputs
	Refinance         *calc.RefinanceInputs
	BlendedRate       *calc.BlendedRateInputs
	UFMIPRefund       *calc.UFMIPRefundInputs
	Income            *calc.IncomeInputs
	TaxSavings        *calc.TaxSavingsInputs
}

// JobTypes lists every recognized job type.
var JobTypes = []string{
	"amortization", "apr", "mortgage-apr", "heloc", "credit-card",
	"debt-consolidation", "early-payoff", "prepayment", "refinance",
	"blended-rate", "ufmip-refund", "income", "tax-savings",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the configuration for likely mistakes and
// returns human-readable warnings. Degenerate numeric inputs are not errors;
// the calculators zero them out, but the warnings surface probable typos.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Jobs) == 0 {
		warnings = append(warnings, "no jobs configured; nothing to calculate")
	}

	for i, job := range conf.Jobs {
		label := job.Name
		if label == "" {
			label = fmt.Sprintf("job %d", i+1)
		}

		if !knownJobType(job.Type) {
			warnings = append(warnings, fmt.Sprintf("%s: unknown job type %q", label, job.Type))
			continue
		}

		switch job.Type {
		case "amortization":
			if job.Amortization == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing amortization inputs", label))
			} else if job.Amortization.LoanAmount <= 0 {
				warnings = append(warnings, fmt.Sprintf("%s: non-positive loan amount produces an empty schedule", label))
			}
		case "apr":
			if job.APR == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing apr inputs", label))
			}
		case "mortgage-apr":
			if job.MortgageAPR == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing mortgage-apr inputs", label))
			}
		case "heloc":
			if job.HELOC == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing heloc inputs", label))
			}
		case "credit-card":
			if job.CreditCard == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing credit-card inputs", label))
			}
		case "debt-consolidation":
			if job.DebtConsolidation == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing debt-consolidation inputs", label))
			}
		case "early-payoff":
			if job.EarlyPayoff == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing early-payoff inputs", label))
			}
		case "prepayment":
			if job.Prepayment == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing prepayment inputs", label))
			}
		case "refinance":
			if job.Refinance == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing refinance inputs", label))
			}
		case "blended-rate":
			if job.BlendedRate == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing blended-rate inputs", label))
			}
		case "ufmip-refund":
			if job.UFMIPRefund == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing ufmip-refund inputs", label))
			}
		case "income":
			if job.Income == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing income inputs", label))
			}
		case "tax-savings":
			if job.TaxSavings == nil {
				warnings = append(warnings, fmt.Sprintf("%s: missing tax-savings inputs", label))
			}
		}
	}

	return warnings
}

// ServerAddress returns the configured listen address or the default.
func (conf *Configuration) ServerAddress() string {
	if conf.Server.Address != "" {
		return conf.Server.Address
	}
	return constants.DefaultServerAddress
}

// MaxBodyBytes returns the configured request body cap or the default.
func (conf *Configuration) MaxBodyBytes() int64 {
	if conf.Server.MaxBodyBytes > 0 {
		return conf.Server.MaxBodyBytes
	}
	return constants.DefaultMaxBodyBytes
}

func knownJobType(jobType string) bool {
	for _, t := range JobTypes {
		if t == jobType {
			return true
		}
	}
	return false
}
