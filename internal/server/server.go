// Package server exposes the calculators as a small JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lendkit/lendkit/internal/config"
	"github.com/lendkit/lendkit/pkg/calc"
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/loanlimits"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	r := mux.NewRouter()
	r.Use(h.requestID)

	r.HandleFunc("/api/v1/calc/{name}", h.handleCalc).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/loan-limits/{program}/{state}", h.handleLoanLimits).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/export", h.handleConfigExport).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/version", h.handleVersion).Methods(http.MethodGet)

	return r
}

// requestID tags every request with a UUID for log correlation.
func (h *handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		h.logger.Debug("request handled",
			zap.String("op", "server.requestID"),
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	name := mux.Vars(r)["name"]

	result, err := dispatch(name, json.NewDecoder(r.Body))
	if err != nil {
		status := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
		} else if errors.Is(err, errUnknownCalculator) {
			status = http.StatusNotFound
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

var errUnknownCalculator = errors.New("unknown calculator")

// dispatch decodes the request body into the named calculator's inputs and
// runs it. Every calculator returns a well-formed result for any decodable
// numeric input, so decoding is the only failure mode.
func dispatch(name string, dec *json.Decoder) (interface{}, error) {
	run := func(in interface{}, calculate func() interface{}) (interface{}, error) {
		if err := dec.Decode(in); err != nil {
			return nil, fmt.Errorf("failed to decode inputs: %w", err)
		}
		return calculate(), nil
	}

	switch name {
	case "amortization":
		var in calc.AmortizationInputs
		return run(&in, func() interface{} { return calc.CalculateAmortization(in) })
	case "apr":
		var in calc.APRInputs
		return run(&in, func() interface{} { return calc.CalculateAPR(in) })
	case "mortgage-apr":
		var in calc.MortgageAPRInputs
		return run(&in, func() interface{} { return calc.CalculateMortgageAPR(in) })
	case "heloc":
		var in calc.HELOCInputs
		return run(&in, func() interface{} { return calc.CalculateHELOC(in) })
	case "credit-card":
		var in calc.CreditCardInputs
		return run(&in, func() interface{} { return calc.CalculateCreditCardPayoff(in) })
	case "debt-consolidation":
		var in calc.ConsolidationInputs
		return run(&in, func() interface{} { return calc.CalculateDebtConsolidation(in) })
	case "early-payoff":
		var in calc.EarlyPayoffInputs
		return run(&in, func() interface{} { return calc.CalculateEarlyPayoff(in) })
	case "prepayment":
		var in calc.PrepaymentInputs
		return run(&in, func() interface{} { return calc.CalculatePrepaymentSavings(in) })
	case "refinance":
		var in calc.RefinanceInputs
		return run(&in, func() interface{} { return calc.CalculateRefinanceBreakeven(in) })
	case "blended-rate":
		var in calc.BlendedRateInputs
		return run(&in, func() interface{} { return calc.CalculateBlendedRate(in) })
	case "ufmip-refund":
		var in calc.UFMIPRefundInputs
		return run(&in, func() interface{} { return calc.CalculateUFMIPRefund(in) })
	case "income":
		var in calc.IncomeInputs
		return run(&in, func() interface{} { return calc.CalculateIncome(in) })
	case "tax-savings":
		var in calc.TaxSavingsInputs
		return run(&in, func() interface{} { return calc.CalculateTaxSavings(in) })
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownCalculator, name)
	}
}

type loanLimitResponse struct {
	Program string           `json:"program"`
	State   string           `json:"state"`
	Limits  loanlimits.Limit `json:"limits"`
}

func (h *handler) handleLoanLimits(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	program := loanlimits.Program(vars["program"])
	state := strings.ToUpper(vars["state"])

	limits, ok := loanlimits.Lookup(program, state)
	if !ok {
		h.respondError(w, http.StatusNotFound,
			fmt.Sprintf("no loan limits for program %q in %q", vars["program"], state))
		return
	}

	h.respondJSON(w, http.StatusOK, loanLimitResponse{
		Program: string(program),
		State:   state,
		Limits:  limits,
	})
}

// handleConfigExport serializes a posted job configuration to YAML so a run
// set up through the API can be replayed with the CLI.
func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var conf config.Configuration
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err))
		return
	}

	data, err := yaml.Marshal(conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to serialize configuration: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", "attachment; filename=\"config.yaml\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}
