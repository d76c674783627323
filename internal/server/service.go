// Package server provides the stateless HTTP JSON API over the engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/export"
)

const maxBodyBytes = 1 << 20

// Config controls the server runtime behavior.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// Status is served at /v1/status.
type Status struct {
	StartedAt          time.Time `json:"started_at"`
	UptimeSec          int64     `json:"uptime_sec"`
	Calculations       int64     `json:"calculations"`
	TaxCalculations    int64     `json:"tax_calculations"`
	BudgetCalculations int64     `json:"budget_calculations"`
}

// CityEntry is one row of /v1/cities.
type CityEntry struct {
	Name string `json:"name"`
	engine.CityProfile
}

// TaxRequest is the body of POST /v1/tax.
type TaxRequest struct {
	GrossAnnual float64 `json:"gross_annual"`
}

// TaxResponse adds the monthly deduction to the annual position.
type TaxResponse struct {
	engine.TaxResult
	MonthlyTax float64 `json:"monthly_tax"`
}

// Service serves the HTTP API. It holds no calculation state beyond
// counters.
type Service struct {
	cfg       Config
	log       *slog.Logger
	startedAt time.Time
	metrics   *metrics

	taxCalls    atomic.Int64
	budgetCalls atomic.Int64
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
		metrics:   newMetrics(),
	}
}

// Handler returns the routed API with request-id, logging and metrics
// middleware applied.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/cities", s.handleCities)
	mux.HandleFunc("POST /v1/tax", s.handleTax)
	mux.HandleFunc("POST /v1/budget", s.handleBudget)
	mux.Handle("GET /metrics", s.metrics.handler())

	return s.instrument(mux)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("payreal api listening", "addr", s.cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("payreal api shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Service) status() Status {
	tax, budget := s.taxCalls.Load(), s.budgetCalls.Load()
	return Status{
		StartedAt:          s.startedAt,
		UptimeSec:          int64(time.Since(s.startedAt).Seconds()),
		Calculations:       tax + budget,
		TaxCalculations:    tax,
		BudgetCalculations: budget,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Service) handleCities(w http.ResponseWriter, _ *http.Request) {
	cities := engine.Cities()
	out := make([]CityEntry, len(cities))
	for i, c := range cities {
		out[i] = CityEntry{Name: string(c), CityProfile: engine.ProfileFor(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleTax(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := (engine.BudgetInput{GrossAnnual: req.GrossAnnual}).Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := engine.ComputeTax(req.GrossAnnual)
	s.taxCalls.Add(1)
	s.metrics.calculations.WithLabelValues("tax").Inc()
	s.log.Debug("tax computed",
		"request_id", RequestID(r.Context()),
		"gross_annual", req.GrossAnnual,
		"annual_tax", res.AnnualTax)

	writeJSON(w, http.StatusOK, TaxResponse{TaxResult: res, MonthlyTax: res.MonthlyTax()})
}

func (s *Service) handleBudget(w http.ResponseWriter, r *http.Request) {
	var in engine.BudgetInput
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := engine.ComputeBudget(in)
	s.budgetCalls.Add(1)
	s.metrics.calculations.WithLabelValues("budget").Inc()
	s.metrics.outlooks.WithLabelValues(res.Outlook().String()).Inc()
	s.log.Debug("budget computed",
		"request_id", RequestID(r.Context()),
		"city", in.City,
		"outlook", res.Outlook().String(),
		"months_to_goal", res.MonthsToGoal.String())

	writeJSON(w, http.StatusOK, export.NewRecord("", res))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON body: trailing data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
