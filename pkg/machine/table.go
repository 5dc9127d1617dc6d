package machine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// TableFunc builds a transition table of type T from the raw transitions.
type TableFunc[S comparable, T any] func(ports.TransitionBuilder[S]) (T, error)

type key[S comparable] struct {
	state  S
	symbol domain.Symbol
}

// Entry is one (state, symbol) -> action row, used for presentation.
type Entry[S comparable] struct {
	State  S
	Read   domain.Symbol
	Action domain.Action[S]
}

// DeterministicTable is a partial function (state, symbol) -> Action.
type DeterministicTable[S comparable] struct {
	transitions map[key[S]]domain.Action[S]
}

// NewDeterministicTable inserts every declared transition, failing with a
// DuplicateTransitionError on the second insertion at the same key.
func NewDeterministicTable[S comparable](b ports.TransitionBuilder[S]) (*DeterministicTable[S], error) {
	transitions := make(map[key[S]]domain.Action[S])

	for _, state := range b.States() {
		for _, tr := range b.StateTransitions(state) {
			k := key[S]{state: state, symbol: tr.Read}
			if _, exists := transitions[k]; exists {
				return nil, &DuplicateTransitionError[S]{State: state, Symbol: tr.Read}
			}
			transitions[k] = tr.Action
		}
	}

	return &DeterministicTable[S]{transitions: transitions}, nil
}

// Lookup returns the action for (state, sym). A miss is not an error.
func (t *DeterministicTable[S]) Lookup(state S, sym domain.Symbol) (domain.Action[S], bool) {
	act, ok := t.transitions[key[S]{state: state, symbol: sym}]
	return act, ok
}

// Len returns the number of defined (state, symbol) pairs.
func (t *DeterministicTable[S]) Len() int {
	return len(t.transitions)
}

// Entries lists every transition ordered by state then symbol.
func (t *DeterministicTable[S]) Entries() []Entry[S] {
	entries := make([]Entry[S], 0, len(t.transitions))
	for k, act := range t.transitions {
		entries = append(entries, Entry[S]{State: k.state, Read: k.symbol, Action: act})
	}
	sortEntries(entries)
	return entries
}

// AsNonDeterministic views the table as one with singleton action sets.
func (t *DeterministicTable[S]) AsNonDeterministic() *NonDeterministicTable[S] {
	transitions := make(map[key[S]][]domain.Action[S], len(t.transitions))
	for k, act := range t.transitions {
		transitions[k] = []domain.Action[S]{act}
	}
	return &NonDeterministicTable[S]{transitions: transitions}
}

// NonDeterministicTable maps (state, symbol) to an ordered set of actions.
type NonDeterministicTable[S comparable] struct {
	transitions map[key[S]][]domain.Action[S]
}

// NewNonDeterministicTable accumulates every declared transition. Repeated
// keys add choices; an identical action declared twice is kept once.
// It never fails; the error return satisfies TableFunc.
func NewNonDeterministicTable[S comparable](b ports.TransitionBuilder[S]) (*NonDeterministicTable[S], error) {
	transitions := make(map[key[S]][]domain.Action[S])

	for _, state := range b.States() {
		for _, tr := range b.StateTransitions(state) {
			k := key[S]{state: state, symbol: tr.Read}
			if slices.Contains(transitions[k], tr.Action) {
				continue
			}
			transitions[k] = append(transitions[k], tr.Action)
		}
	}

	return &NonDeterministicTable[S]{transitions: transitions}, nil
}

// Lookup returns the choices for (state, sym) in declaration order, or nil.
// The returned slice is shared with the table and must not be modified.
func (t *NonDeterministicTable[S]) Lookup(state S, sym domain.Symbol) []domain.Action[S] {
	return t.transitions[key[S]{state: state, symbol: sym}]
}

// Len returns the number of (state, symbol) pairs with at least one choice.
func (t *NonDeterministicTable[S]) Len() int {
	return len(t.transitions)
}

// Entries lists every choice ordered by state then symbol, keeping the
// declaration order among choices for the same key.
func (t *NonDeterministicTable[S]) Entries() []Entry[S] {
	var entries []Entry[S]
	for k, acts := range t.transitions {
		for _, act := range acts {
			entries = append(entries, Entry[S]{State: k.state, Read: k.symbol, Action: act})
		}
	}
	sortEntries(entries)
	return entries
}

func sortEntries[S comparable](entries []Entry[S]) {
	slices.SortStableFunc(entries, func(a, b Entry[S]) int {
		if c := cmp.Compare(fmt.Sprint(a.State), fmt.Sprint(b.State)); c != 0 {
			return c
		}
		return cmp.Compare(a.Read, b.Read)
	})
}
