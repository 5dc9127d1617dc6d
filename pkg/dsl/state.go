package dsl

import "github.com/aretw0/turing/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder[S comparable] struct {
	id      S
	class   domain.Classification
	builder *Builder[S]
}

// Start marks the state as the starting state.
func (s *StateBuilder[S]) Start() *StateBuilder[S] {
	id := s.id
	s.builder.start = &id
	return s
}

// Accept marks the state as the accepting state, replacing any previous one.
func (s *StateBuilder[S]) Accept() *StateBuilder[S] {
	s.designate(&s.builder.accept, domain.Accepting)
	return s
}

// Reject marks the state as the rejecting state, replacing any previous one.
func (s *StateBuilder[S]) Reject() *StateBuilder[S] {
	s.designate(&s.builder.reject, domain.Rejecting)
	return s
}

func (s *StateBuilder[S]) designate(slot **S, class domain.Classification) {
	if prev := *slot; prev != nil {
		if sb, ok := s.builder.states[*prev]; ok && sb.class == class {
			sb.class = domain.Neutral
		}
	}
	id := s.id
	*slot = &id
	s.class = class
}

// On adds a transition taken when read is under the head.
// Repeating the same read symbol declares another choice.
func (s *StateBuilder[S]) On(read domain.Symbol, next S, write domain.Symbol, move domain.Motion) *StateBuilder[S] {
	s.builder.Transition(s.id, domain.NewTransition(read, next, write, move))
	return s
}

// Add is a shortcut to declare the next state without leaving the chain.
func (s *StateBuilder[S]) Add(id S) *StateBuilder[S] {
	return s.builder.Add(id)
}
