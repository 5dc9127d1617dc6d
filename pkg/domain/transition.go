package domain

// Transition pairs the symbol read under the head with the Action it triggers.
// The source state is implied by whoever holds the transition.
type Transition[S comparable] struct {
	Read   Symbol
	Action Action[S]
}

// NewTransition builds a Transition from its five-field textual form minus the source state.
func NewTransition[S comparable](read Symbol, next S, write Symbol, move Motion) Transition[S] {
	return Transition[S]{Read: read, Action: NewAction(next, write, move)}
}
