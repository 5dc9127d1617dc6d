package domain

import "fmt"

// Action is the effect of a single transition.
// It is comparable, so non-deterministic tables can keep sets of them.
type Action[S comparable] struct {
	Next  S
	Write Symbol
	Move  Motion
}

// NewAction is a small convenience for building actions positionally.
func NewAction[S comparable](next S, write Symbol, move Motion) Action[S] {
	return Action[S]{Next: next, Write: write, Move: move}
}

func (a Action[S]) String() string {
	return fmt.Sprintf("%v,%c,%s", a.Next, a.Write, a.Move)
}
