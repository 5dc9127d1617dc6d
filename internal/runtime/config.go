package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// Config is everything an engine needs: the shared representation and the
// initial tape content.
type Config[S comparable, T any] struct {
	Representation *machine.Representation[S, T]
	Input          []domain.Symbol
}

// DeterministicConfig configures a Deterministic engine.
type DeterministicConfig[S comparable] = Config[S, *machine.DeterministicTable[S]]

// NonDeterministicConfig configures a NonDeterministic engine.
type NonDeterministicConfig[S comparable] = Config[S, *machine.NonDeterministicTable[S]]

func (c Config[S, T]) validate() error {
	if c.Representation == nil {
		return ErrNilRepresentation
	}
	return c.Representation.ValidateTape(c.Input)
}
