package runner

import "github.com/aretw0/turing/pkg/ports"

// Counter forwards every call to the wrapped machine and counts the steps
// that were not no-ops.
type Counter[T any] struct {
	inner ports.Machine[T]
	steps int
}

// NewCounter decorates m with a step counter.
func NewCounter[T any](m ports.Machine[T]) *Counter[T] {
	return &Counter[T]{inner: m}
}

func (c *Counter[T]) Step() {
	if c.inner.IsAccepting() || c.inner.IsRejecting() {
		return
	}
	c.steps++
	c.inner.Step()
}

func (c *Counter[T]) IsAccepting() bool { return c.inner.IsAccepting() }
func (c *Counter[T]) IsRejecting() bool { return c.inner.IsRejecting() }
func (c *Counter[T]) Tape() T           { return c.inner.Tape() }

// Steps returns how many steps reached the wrapped machine.
func (c *Counter[T]) Steps() int {
	return c.steps
}
