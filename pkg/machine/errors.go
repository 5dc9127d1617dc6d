package machine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
)

var (
	// ErrStartingStateNotSpecified is returned when the builder has no starting state.
	ErrStartingStateNotSpecified = errors.New("starting state not specified")

	// ErrAcceptStateNotSpecified is returned when the builder has no accepting state.
	ErrAcceptStateNotSpecified = errors.New("accepting state not specified")

	// ErrRejectStateNotSpecified is returned when the builder has no rejecting state.
	ErrRejectStateNotSpecified = errors.New("rejecting state not specified")

	// ErrAcceptRejectSameState is returned when one state is designated both
	// accepting and rejecting.
	ErrAcceptRejectSameState = errors.New("accepting and rejecting state must differ")
)

// StateMismatchError lists every state used by the machine description but
// missing from its declared state set.
type StateMismatchError[S comparable] struct {
	States []S
}

func (e *StateMismatchError[S]) Error() string {
	return fmt.Sprintf("transition table references %d undeclared state(s): %v", len(e.States), e.States)
}

// AlphabetMismatchError lists every symbol used by the transition table but
// missing from the alphabet.
type AlphabetMismatchError struct {
	Symbols []domain.Symbol
}

func (e *AlphabetMismatchError) Error() string {
	return fmt.Sprintf("transition table uses %d symbol(s) outside the alphabet: %q", len(e.Symbols), e.Symbols)
}

// TableError wraps a failure reported by a table constructor.
type TableError struct {
	Err error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table construction failed: %v", e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// DuplicateTransitionError is returned by the deterministic table when two
// transitions share the same (state, symbol) key.
type DuplicateTransitionError[S comparable] struct {
	State  S
	Symbol domain.Symbol
}

func (e *DuplicateTransitionError[S]) Error() string {
	return fmt.Sprintf("duplicate transition for state %v on symbol %q", e.State, e.Symbol)
}

// TapeAlphabetError lists the initial tape symbols missing from the alphabet.
type TapeAlphabetError struct {
	Symbols []domain.Symbol
}

func (e *TapeAlphabetError) Error() string {
	return fmt.Sprintf("tape contains %d symbol(s) outside the alphabet: %q", len(e.Symbols), e.Symbols)
}

// sortedStates orders states by their printed form so reports are stable.
func sortedStates[S comparable](set map[S]struct{}) []S {
	out := make([]S, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b S) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return out
}

func sortedSymbols(set map[domain.Symbol]struct{}) []domain.Symbol {
	out := make([]domain.Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
