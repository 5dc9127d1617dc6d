package runtime

import (
	"log/slog"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
)

type engineOptions struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures an engine at construction time.
type EngineOption func(*engineOptions)

// WithLogger sets the structured logger used for per-step debug traces.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

func newEngineOptions(opts []EngineOption) engineOptions {
	o := engineOptions{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o engineOptions) emitStep(mode domain.Mode, paths int) {
	if o.hooks.OnStep != nil {
		o.hooks.OnStep(&domain.StepEvent{
			EventBase: domain.NewEventBase(domain.EventStep, mode),
			Paths:     paths,
		})
	}
}

func (o engineOptions) emitBranch(mode domain.Mode, state string, read domain.Symbol, choices int) {
	if o.hooks.OnBranch != nil {
		o.hooks.OnBranch(&domain.BranchEvent{
			EventBase: domain.NewEventBase(domain.EventBranch, mode),
			State:     state,
			Read:      read,
			Choices:   choices,
		})
	}
}

func (o engineOptions) emitReject(mode domain.Mode, state string, read domain.Symbol, head int) {
	if o.hooks.OnReject != nil {
		o.hooks.OnReject(&domain.PathEvent{
			EventBase: domain.NewEventBase(domain.EventReject, mode),
			State:     state,
			Read:      read,
			Head:      head,
		})
	}
}

func (o engineOptions) emitHalt(mode domain.Mode, accepted bool, paths int) {
	if o.hooks.OnHalt != nil {
		o.hooks.OnHalt(&domain.HaltEvent{
			EventBase: domain.NewEventBase(domain.EventHalt, mode),
			Accepted:  accepted,
			Paths:     paths,
		})
	}
}
