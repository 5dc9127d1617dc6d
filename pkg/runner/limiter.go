package runner

import "github.com/aretw0/turing/pkg/ports"

// Limiter rejects once more than max steps have been taken, whatever the
// wrapped machine says.
type Limiter[T any] struct {
	counter *Counter[T]
	max     int
}

// NewLimiter decorates m with a budget of max steps.
func NewLimiter[T any](m ports.Machine[T], max int) *Limiter[T] {
	return &Limiter[T]{counter: NewCounter(m), max: max}
}

// Limited reports whether the budget has been exceeded.
func (l *Limiter[T]) Limited() bool {
	return l.counter.Steps() > l.max
}

func (l *Limiter[T]) Step() {
	if l.IsAccepting() || l.IsRejecting() {
		return
	}
	l.counter.Step()
}

func (l *Limiter[T]) IsAccepting() bool {
	return !l.Limited() && l.counter.IsAccepting()
}

func (l *Limiter[T]) IsRejecting() bool {
	return l.Limited() || l.counter.IsRejecting()
}

func (l *Limiter[T]) Tape() T {
	return l.counter.Tape()
}

// Steps returns how many steps reached the wrapped machine.
func (l *Limiter[T]) Steps() int {
	return l.counter.Steps()
}
