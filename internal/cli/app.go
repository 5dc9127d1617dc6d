package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/observability"
)

// App carries what every command needs once the configuration is loaded.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer

	closers []io.Closer
}

// NewApp builds the logger described by cfg. Results are written to stdout.
func NewApp(cfg *config.Config, stdout io.Writer) (*App, error) {
	a := &App{Config: cfg, Stdout: stdout}

	var extra []slog.Handler
	if cfg.LogFile != "" {
		h, closer, err := logging.OpenFile(cfg.LogFile, cfg.Level())
		if err != nil {
			return nil, ioError(err)
		}
		extra = append(extra, h)
		a.closers = append(a.closers, closer)
	}
	a.Logger = logging.New(cfg.Level(), extra...)

	if cfg.File != "" {
		a.Logger.Debug("Config loaded", "file", cfg.File)
	}
	return a, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// debug reports whether debug logging is on.
func (a *App) debug() bool {
	return a.Config.Level() <= slog.LevelDebug
}

// simulatorOptions applies the configured mode, limit and logger.
// In debug mode every lifecycle event is logged as well.
func (a *App) simulatorOptions(extra ...turing.Option) []turing.Option {
	opts := []turing.Option{
		turing.WithMode(a.Config.ExecutionMode()),
		turing.WithLimit(a.Config.Limit),
		turing.WithLogger(a.Logger),
	}
	if a.debug() {
		opts = append(opts, turing.WithLifecycleHooks(observability.LogHooks(a.Logger)))
	}
	return append(opts, extra...)
}

// load reads the machine at path with the configured options.
func (a *App) load(path string, extra ...turing.Option) (*turing.Simulator, error) {
	sim, err := turing.Load(path, a.simulatorOptions(extra...)...)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("Machine loaded", "machine", sim.Name, "mode", sim.Mode())
	return sim, nil
}

// isTerminal reports whether results go to an interactive terminal.
func (a *App) isTerminal() bool {
	f, ok := a.Stdout.(*os.File)
	return ok && tui.IsTerminal(f)
}
