package machine

import (
	"maps"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// Representation is the validated, immutable description of a machine.
// T is the transition table flavor. Engines share it by pointer.
type Representation[S comparable, T any] struct {
	states         map[S]domain.Classification
	startingState  S
	acceptingState S
	rejectingState S
	alphabet       map[domain.Symbol]struct{}
	table          T
}

// DeterministicRepresentation is a Representation backed by a DeterministicTable.
type DeterministicRepresentation[S comparable] = Representation[S, *DeterministicTable[S]]

// NonDeterministicRepresentation is a Representation backed by a NonDeterministicTable.
type NonDeterministicRepresentation[S comparable] = Representation[S, *NonDeterministicTable[S]]

// New validates b and builds its transition table with build.
func New[S comparable, T any](b ports.RawBuilder[S], build TableFunc[S, T]) (*Representation[S, T], error) {
	start, ok := b.StartingState()
	if !ok {
		return nil, ErrStartingStateNotSpecified
	}
	accept, ok := b.AcceptingState()
	if !ok {
		return nil, ErrAcceptStateNotSpecified
	}
	reject, ok := b.RejectingState()
	if !ok {
		return nil, ErrRejectStateNotSpecified
	}
	if accept == reject {
		return nil, ErrAcceptRejectSameState
	}

	states := maps.Clone(b.States())
	if states == nil {
		states = make(map[S]domain.Classification)
	}
	transitions := b.Transitions()

	missingStates := make(map[S]struct{})
	for _, s := range []S{start, accept, reject} {
		if _, ok := states[s]; !ok {
			missingStates[s] = struct{}{}
		}
	}

	alphabet := make(map[domain.Symbol]struct{})
	alphabet[domain.Blank] = struct{}{}
	for _, sym := range b.Alphabet() {
		alphabet[sym] = struct{}{}
	}

	missingSymbols := make(map[domain.Symbol]struct{})
	for _, src := range transitions.States() {
		if _, ok := states[src]; !ok {
			missingStates[src] = struct{}{}
		}
		for _, tr := range transitions.StateTransitions(src) {
			if _, ok := states[tr.Action.Next]; !ok {
				missingStates[tr.Action.Next] = struct{}{}
			}
			for _, sym := range []domain.Symbol{tr.Read, tr.Action.Write} {
				if _, ok := alphabet[sym]; !ok {
					missingSymbols[sym] = struct{}{}
				}
			}
		}
	}

	if len(missingStates) > 0 {
		return nil, &StateMismatchError[S]{States: sortedStates(missingStates)}
	}
	if len(missingSymbols) > 0 {
		return nil, &AlphabetMismatchError{Symbols: sortedSymbols(missingSymbols)}
	}

	table, err := build(transitions)
	if err != nil {
		return nil, &TableError{Err: err}
	}

	// Only the designated states halt; any other marker the builder recorded
	// is dropped.
	for s := range states {
		states[s] = domain.Neutral
	}
	states[accept] = domain.Accepting
	states[reject] = domain.Rejecting

	return &Representation[S, T]{
		states:         states,
		startingState:  start,
		acceptingState: accept,
		rejectingState: reject,
		alphabet:       alphabet,
		table:          table,
	}, nil
}

// NewDeterministic builds a representation with a deterministic table.
func NewDeterministic[S comparable](b ports.RawBuilder[S]) (*DeterministicRepresentation[S], error) {
	return New(b, NewDeterministicTable[S])
}

// NewNonDeterministic builds a representation with a non-deterministic table.
func NewNonDeterministic[S comparable](b ports.RawBuilder[S]) (*NonDeterministicRepresentation[S], error) {
	return New(b, NewNonDeterministicTable[S])
}

// ToNonDeterministic reinterprets a deterministic representation as a
// non-deterministic one whose every action set is a singleton.
func ToNonDeterministic[S comparable](r *DeterministicRepresentation[S]) *NonDeterministicRepresentation[S] {
	return &NonDeterministicRepresentation[S]{
		states:         r.states,
		startingState:  r.startingState,
		acceptingState: r.acceptingState,
		rejectingState: r.rejectingState,
		alphabet:       r.alphabet,
		table:          r.table.AsNonDeterministic(),
	}
}

// States returns a copy of the declared states and their classifications.
func (r *Representation[S, T]) States() map[S]domain.Classification {
	return maps.Clone(r.states)
}

func (r *Representation[S, T]) StartingState() S  { return r.startingState }
func (r *Representation[S, T]) AcceptingState() S { return r.acceptingState }
func (r *Representation[S, T]) RejectingState() S { return r.rejectingState }

// Alphabet returns the sorted alphabet, blank included.
func (r *Representation[S, T]) Alphabet() []domain.Symbol {
	return slices.Sorted(maps.Keys(r.alphabet))
}

// HasSymbol reports whether sym belongs to the alphabet.
func (r *Representation[S, T]) HasSymbol(sym domain.Symbol) bool {
	_, ok := r.alphabet[sym]
	return ok
}

// Table returns the transition table. Tables expose no mutators.
func (r *Representation[S, T]) Table() T {
	return r.table
}

// ValidateTape checks that every symbol of the initial tape is in the alphabet.
func (r *Representation[S, T]) ValidateTape(input []domain.Symbol) error {
	missing := make(map[domain.Symbol]struct{})
	for _, sym := range input {
		if !r.HasSymbol(sym) {
			missing[sym] = struct{}{}
		}
	}
	if len(missing) > 0 {
		return &TapeAlphabetError{Symbols: sortedSymbols(missing)}
	}
	return nil
}
