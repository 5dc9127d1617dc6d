package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/ports"
)

// Result is the outcome of a run to completion.
type Result[T any] struct {
	Accepted bool
	Tape     T
	Steps    int

	// Limited is set when the step budget ran out before the machine halted.
	Limited bool
}

// Execute steps m until it halts, its step budget runs out or ctx is done.
// On cancellation it returns the partial result together with the context error.
func Execute[T any](ctx context.Context, m ports.Machine[T], opts ...Option) (Result[T], error) {
	o := newOptions(opts)

	counter := NewCounter(m)
	var (
		driven  ports.Machine[T] = counter
		limiter *Limiter[T]
	)
	if o.limit > 0 {
		limiter = NewLimiter[T](counter, o.limit)
		driven = limiter
	}

	start := time.Now()
	o.logger.Debug("run started", slog.Int("limit", o.limit))

	for !driven.IsAccepting() && !driven.IsRejecting() {
		if counter.Steps()%o.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				o.logger.Debug("run interrupted", slog.Int("steps", counter.Steps()))
				return snapshot(driven, counter, limiter), fmt.Errorf("run interrupted after %d steps: %w", counter.Steps(), err)
			}
		}
		driven.Step()
	}

	res := snapshot(driven, counter, limiter)
	o.logger.Debug("run finished",
		slog.Bool("accepted", res.Accepted),
		slog.Bool("limited", res.Limited),
		slog.Int("steps", res.Steps),
		slog.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

func snapshot[T any](m ports.Machine[T], counter *Counter[T], limiter *Limiter[T]) Result[T] {
	return Result[T]{
		Accepted: m.IsAccepting(),
		Tape:     m.Tape(),
		Steps:    counter.Steps(),
		Limited:  limiter != nil && limiter.Limited(),
	}
}
