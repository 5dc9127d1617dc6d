package dsl

import (
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
)

// Builder collects a raw machine description.
type Builder[S comparable] struct {
	states   map[S]*StateBuilder[S]
	alphabet []domain.Symbol

	// Transitions are kept apart from declarations so that a transition out
	// of an undeclared state reaches the validator as such.
	sources     []S
	transitions map[S][]domain.Transition[S]

	start, accept, reject *S
}

// New creates an empty builder.
func New[S comparable]() *Builder[S] {
	return &Builder[S]{
		states:      make(map[S]*StateBuilder[S]),
		transitions: make(map[S][]domain.Transition[S]),
	}
}

// Add declares a neutral state and returns its builder.
// If the state already exists, it returns the existing builder.
func (b *Builder[S]) Add(id S) *StateBuilder[S] {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder[S]{id: id, builder: b}
	b.states[id] = sb
	return sb
}

// Transition records a transition out of from without declaring from.
func (b *Builder[S]) Transition(from S, tr domain.Transition[S]) *Builder[S] {
	if _, ok := b.transitions[from]; !ok {
		b.sources = append(b.sources, from)
	}
	b.transitions[from] = append(b.transitions[from], tr)
	return b
}

// StartAt names the starting state without declaring it, so a name that is
// never declared reaches the validator as a mismatch.
func (b *Builder[S]) StartAt(id S) *Builder[S] {
	b.start = &id
	return b
}

// Symbols appends symbols to the alphabet. Blank is always implied.
func (b *Builder[S]) Symbols(symbols ...domain.Symbol) *Builder[S] {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// Deterministic validates the description into a deterministic representation.
func (b *Builder[S]) Deterministic() (*machine.DeterministicRepresentation[S], error) {
	return machine.NewDeterministic[S](b)
}

// NonDeterministic validates the description into a non-deterministic representation.
func (b *Builder[S]) NonDeterministic() (*machine.NonDeterministicRepresentation[S], error) {
	return machine.NewNonDeterministic[S](b)
}

// States implements ports.RawBuilder.
func (b *Builder[S]) States() map[S]domain.Classification {
	out := make(map[S]domain.Classification, len(b.states))
	for id, sb := range b.states {
		out[id] = sb.class
	}
	return out
}

func (b *Builder[S]) StartingState() (S, bool)  { return deref(b.start) }
func (b *Builder[S]) AcceptingState() (S, bool) { return deref(b.accept) }
func (b *Builder[S]) RejectingState() (S, bool) { return deref(b.reject) }

// Alphabet implements ports.RawBuilder.
func (b *Builder[S]) Alphabet() []domain.Symbol { return b.alphabet }

// Transitions implements ports.RawBuilder.
func (b *Builder[S]) Transitions() ports.TransitionBuilder[S] {
	return transitions[S]{b}
}

type transitions[S comparable] struct {
	b *Builder[S]
}

func (t transitions[S]) States() []S {
	return slices.Clone(t.b.sources)
}

func (t transitions[S]) StateTransitions(state S) []domain.Transition[S] {
	return slices.Clone(t.b.transitions[state])
}

func deref[S comparable](p *S) (S, bool) {
	if p == nil {
		var zero S
		return zero, false
	}
	return *p, true
}
