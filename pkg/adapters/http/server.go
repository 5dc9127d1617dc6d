package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/history"
	"github.com/aretw0/turing/pkg/machine"
)

// DefaultLimit bounds runs whose request does not set a limit.
const DefaultLimit = 100000

// RunRequest is the body of POST /v1/runs.
type RunRequest struct {
	// ID makes the request idempotent: a second request with the same ID
	// returns the stored record without running the machine again.
	ID               string `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	Machine          string `json:"machine"`
	Format           string `json:"format,omitempty"`
	Tape             string `json:"tape"`
	NonDeterministic bool   `json:"nondeterministic,omitempty"`
	Limit            int    `json:"limit,omitempty"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the run API.
type Server struct {
	History      *history.Manager
	Gatherer     prometheus.Gatherer
	Hooks        domain.LifecycleHooks
	Logger       *slog.Logger
	DefaultLimit int
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer exposes the given registry on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLifecycleHooks attaches hooks to every run.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.Hooks = hooks
	}
}

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithDefaultLimit overrides DefaultLimit.
func WithDefaultLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.DefaultLimit = n
		}
	}
}

// NewHandler creates the HTTP handler. Runs are stored through h.
func NewHandler(h *history.Manager, opts ...Option) http.Handler {
	s := &Server{
		History:      h,
		Gatherer:     prometheus.DefaultGatherer,
		Logger:       logging.NewNop(),
		DefaultLimit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1/runs", func(r chi.Router) {
		r.Post("/", s.CreateRun)
		r.Get("/", s.ListRuns)
		r.Get("/{id}", s.GetRun)
		r.Delete("/{id}", s.DeleteRun)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateRun handles POST /v1/runs.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(body.Machine) == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("machine is required"))
		return
	}

	format, err := compiler.ParseFormat(body.Format)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	mode := domain.ModeDeterministic
	if body.NonDeterministic {
		mode = domain.ModeNonDeterministic
	}
	limit := body.Limit
	if limit <= 0 {
		limit = s.DefaultLimit
	}

	sim, err := turing.Parse(strings.NewReader(body.Machine), format,
		turing.WithName(body.Name),
		turing.WithMode(mode),
		turing.WithLimit(limit),
		turing.WithLogger(s.Logger),
		turing.WithLifecycleHooks(s.Hooks),
	)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var (
		record *domain.RunRecord
		ran    = true
	)
	if body.ID != "" {
		record, ran, err = s.History.LoadOrRun(r.Context(), body.ID, func(ctx context.Context) (*domain.RunRecord, error) {
			return sim.Run(ctx, body.Tape)
		})
	} else {
		record, err = sim.Run(r.Context(), body.Tape)
		if err == nil {
			err = s.History.Save(r.Context(), record)
		}
	}
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.Logger.Info("Run completed",
		"run_id", record.ID,
		"machine", record.Machine,
		"outcome", record.Outcome(),
		"steps", record.Steps,
		"cached", !ran,
	)

	status := http.StatusCreated
	if !ran {
		status = http.StatusOK
	}
	s.writeJSON(w, status, record)
}

// ListRuns handles GET /v1/runs. Records are listed newest first.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	records, err := s.History.Recent(r.Context(), 0)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if records == nil {
		records = []*domain.RunRecord{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

// GetRun handles GET /v1/runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	record, err := s.History.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// DeleteRun handles DELETE /v1/runs/{id}.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := s.History.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "turing-http",
		"version": strings.TrimSpace(turing.Version),
	})
}

// statusFor maps run errors to HTTP status codes.
func statusFor(err error) int {
	var tapeErr *machine.TapeAlphabetError
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case errors.As(err, &tapeErr):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("Request failed", "status", status, "err", err)
	} else {
		s.Logger.Warn("Request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
