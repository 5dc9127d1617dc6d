package ports

import "github.com/aretw0/turing/pkg/domain"

// TransitionBuilder exposes the raw, unchecked transition description.
type TransitionBuilder[S comparable] interface {
	// States returns every state that has at least one outgoing transition.
	States() []S

	// StateTransitions returns the (symbol, action) pairs declared for state,
	// in declaration order. Duplicates are reported as declared.
	StateTransitions(state S) []domain.Transition[S]
}

// RawBuilder is what a machine reader hands to the representation constructor.
// Nothing in it has been cross-checked yet.
type RawBuilder[S comparable] interface {
	// States maps every declared state to its classification.
	States() map[S]domain.Classification

	StartingState() (S, bool)
	AcceptingState() (S, bool)
	RejectingState() (S, bool)

	// Alphabet returns the declared tape symbols.
	Alphabet() []domain.Symbol

	Transitions() TransitionBuilder[S]
}
