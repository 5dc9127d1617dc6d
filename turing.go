package turing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/google/uuid"
)

// Format names a machine file syntax.
type Format = compiler.Format

const (
	FormatText = compiler.FormatText
	FormatYAML = compiler.FormatYAML
)

// Simulator is the high-level entry point of the library.
// It owns a validated machine and runs it against any number of inputs.
// A Simulator is safe for concurrent use: every run gets its own engine.
type Simulator struct {
	Name string

	mode   domain.Mode
	limit  int
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	det  *machine.DeterministicRepresentation[string]
	ndet *machine.NonDeterministicRepresentation[string]
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithMode selects the execution engine (default: deterministic).
func WithMode(mode domain.Mode) Option {
	return func(s *Simulator) {
		s.mode = mode
	}
}

// WithLimit bounds every run to n steps. Zero means unbounded.
func WithLimit(n int) Option {
	return func(s *Simulator) {
		s.limit = n
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every engine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithName labels the machine in logs and run records.
func WithName(name string) Option {
	return func(s *Simulator) {
		s.Name = name
	}
}

// New validates b and builds the representation required by the selected mode.
func New(b ports.RawBuilder[string], opts ...Option) (*Simulator, error) {
	s := &Simulator{mode: domain.ModeDeterministic}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.Name != "" {
		s.logger = s.logger.With("machine", s.Name)
	}

	var err error
	switch s.mode {
	case domain.ModeDeterministic:
		s.det, err = machine.NewDeterministic(b)
	case domain.ModeNonDeterministic:
		s.ndet, err = machine.NewNonDeterministic(b)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, s.mode)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Parse reads a machine description from src and builds a Simulator.
func Parse(src io.Reader, format Format, opts ...Option) (*Simulator, error) {
	b, err := compiler.Parse(src, format)
	if err != nil {
		return nil, err
	}
	return New(b, opts...)
}

// Load reads the machine file at path. The format follows the extension and the
// simulator is named after the file unless WithName says otherwise.
func Load(path string, opts ...Option) (*Simulator, error) {
	b, err := compiler.ParseFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(b, append([]Option{WithName(name)}, opts...)...)
}

// Mode reports which engine the simulator runs.
func (s *Simulator) Mode() domain.Mode {
	return s.mode
}

// Representation returns the machine as a non-deterministic representation.
// Deterministic machines are lifted with machine.ToNonDeterministic, so the
// result is suitable for inspection regardless of mode.
func (s *Simulator) Representation() *machine.NonDeterministicRepresentation[string] {
	if s.ndet != nil {
		return s.ndet
	}
	return machine.ToNonDeterministic(s.det)
}

// Run executes the machine on input and returns the outcome as a record with a
// fresh ID. A cancelled ctx yields the partial record and the context error.
func (s *Simulator) Run(ctx context.Context, input string) (*domain.RunRecord, error) {
	symbols := []domain.Symbol(input)
	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(s.logger),
		runtime.WithLifecycleHooks(s.hooks),
	}
	runOpts := []runner.Option{
		runner.WithLimit(s.limit),
		runner.WithLogger(s.logger),
	}

	rec := &domain.RunRecord{
		ID:        uuid.NewString(),
		Machine:   s.Name,
		Mode:      s.mode,
		Input:     input,
		CreatedAt: time.Now().UTC(),
	}

	if s.det != nil {
		eng, err := runtime.NewDeterministic(runtime.DeterministicConfig[string]{
			Representation: s.det,
			Input:          symbols,
		}, engineOpts...)
		if err != nil {
			return nil, err
		}
		res, err := runner.Execute[*tape.Tape](ctx, eng, runOpts...)
		rec.Accepted, rec.Limited, rec.Steps = res.Accepted, res.Limited, res.Steps
		rec.Paths = 1
		rec.Tape = res.Tape.String()
		rec.States = []string{eng.State()}
		return rec, err
	}

	eng, err := runtime.NewNonDeterministic(runtime.NonDeterministicConfig[string]{
		Representation: s.ndet,
		Input:          symbols,
	}, engineOpts...)
	if err != nil {
		return nil, err
	}
	res, err := runner.Execute[[]*tape.Tape](ctx, eng, runOpts...)
	rec.Accepted, rec.Limited, rec.Steps = res.Accepted, res.Limited, res.Steps
	rec.Paths = eng.Paths()
	rec.States = slices.Compact(slices.Sorted(slices.Values(eng.States())))
	if t, ok := eng.AcceptingTape(); ok {
		rec.Tape = t.String()
	} else if len(res.Tape) > 0 {
		rec.Tape = res.Tape[0].String()
	}
	return rec, err
}
