package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/history"
	"github.com/aretw0/turing/pkg/observability"
)

// ShutdownTimeout bounds how long in-flight requests may run after a signal.
const ShutdownTimeout = 5 * time.Second

// ServeOptions configures the API server.
type ServeOptions struct {
	// Memory keeps runs in process instead of Redis.
	Memory bool
}

// Handler assembles the API: run history, Prometheus registry and engine
// metrics. The returned closer releases the store.
func (a *App) Handler(ctx context.Context, opts ServeOptions) (http.Handler, io.Closer, error) {
	var (
		mgr    *history.Manager
		closer io.Closer = io.NopCloser(nil)
	)
	if opts.Memory {
		mgr = history.NewManager(memory.NewStore(), history.WithLogger(a.Logger))
	} else {
		var err error
		mgr, closer, err = a.OpenHistory(ctx)
		if err != nil {
			return nil, nil, err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	hooks := metrics.Hooks()
	if a.debug() {
		hooks = observability.Combine(hooks, observability.LogHooks(a.Logger))
	}

	handler := httpAdapter.NewHandler(mgr,
		httpAdapter.WithGatherer(reg),
		httpAdapter.WithLifecycleHooks(hooks),
		httpAdapter.WithLogger(a.Logger),
		httpAdapter.WithDefaultLimit(a.Config.Limit),
	)
	return handler, closer, nil
}

// Serve runs the API server until ctx is done, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	handler, closer, err := a.Handler(ctx, opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		if a.isTerminal() {
			tui.PrintBanner(a.Stdout, turing.Version)
		}
		a.Logger.Info("Starting Turing Server", "addr", srv.Addr, "memory", opts.Memory)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return ioError(fmt.Errorf("server error: %w", err))

	case <-ctx.Done():
		a.Logger.Info("Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return ioError(err)
			}
		}
		a.Logger.Info("Turing Server stopped gracefully")
		return nil
	}
}
