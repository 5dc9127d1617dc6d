package observability

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LogHooks returns hooks that write every lifecycle event at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("Step", "mode", e.Mode, "paths", e.Paths)
		},
		OnBranch: func(e *domain.BranchEvent) {
			logger.Debug("Branch", "state", e.State, "read", string(e.Read), "choices", e.Choices)
		},
		OnReject: func(e *domain.PathEvent) {
			logger.Debug("Path Rejected", "state", e.State, "read", string(e.Read), "head", e.Head)
		},
		OnHalt: func(e *domain.HaltEvent) {
			logger.Debug("Halt", "mode", e.Mode, "accepted", e.Accepted, "paths", e.Paths)
		},
	}
}

// Combine fans every event out to each of the given hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range hooks {
		out.OnStep = chain(out.OnStep, h.OnStep)
		out.OnBranch = chain(out.OnBranch, h.OnBranch)
		out.OnReject = chain(out.OnReject, h.OnReject)
		out.OnHalt = chain(out.OnHalt, h.OnHalt)
	}
	return out
}

func chain[E any](first, next func(*E)) func(*E) {
	switch {
	case first == nil:
		return next
	case next == nil:
		return first
	}
	return func(e *E) {
		first(e)
		next(e)
	}
}
