package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/tape"
)

// Deterministic runs a machine with exactly one configuration.
// It is not safe for concurrent use.
type Deterministic[S comparable] struct {
	repr *machine.DeterministicRepresentation[S]
	path *path[S]
	opts engineOptions
}

var _ ports.Machine[*tape.Tape] = (*Deterministic[string])(nil)

// NewDeterministic validates cfg and places the head on the first cell of the
// input, in the starting state.
func NewDeterministic[S comparable](cfg DeterministicConfig[S], opts ...EngineOption) (*Deterministic[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Deterministic[S]{
		repr: cfg.Representation,
		path: newPath(cfg.Representation.StartingState(), cfg.Input),
		opts: newEngineOptions(opts),
	}, nil
}

// Step applies one transition. A missing transition sends the machine to the
// rejecting state, writing blank and moving left.
func (d *Deterministic[S]) Step() {
	if d.IsAccepting() || d.IsRejecting() {
		return
	}

	from := d.path.state
	sym := d.path.read()

	act, ok := d.repr.Table().Lookup(from, sym)
	if !ok {
		act = domain.NewAction(d.repr.RejectingState(), domain.Blank, domain.Left)
		d.opts.logger.Debug("no transition", slog.Any("state", from), slog.String("read", string(sym)), slog.Int("head", d.path.head))
		d.opts.emitReject(domain.ModeDeterministic, fmt.Sprint(from), sym, d.path.head)
	}

	d.path.apply(act)
	d.opts.logger.Debug("step",
		slog.Any("from", from),
		slog.String("read", string(sym)),
		slog.String("action", act.String()),
		slog.Int("head", d.path.head),
	)

	d.opts.emitStep(domain.ModeDeterministic, 1)
	if d.IsAccepting() || d.IsRejecting() {
		d.opts.emitHalt(domain.ModeDeterministic, d.IsAccepting(), 1)
	}
}

// IsAccepting reports whether the current state is the accepting state.
func (d *Deterministic[S]) IsAccepting() bool {
	return d.path.state == d.repr.AcceptingState()
}

// IsRejecting reports whether the current state is the rejecting state.
func (d *Deterministic[S]) IsRejecting() bool {
	return d.path.state == d.repr.RejectingState()
}

// Tape returns the live tape. Callers must not write to it.
func (d *Deterministic[S]) Tape() *tape.Tape {
	return d.path.tape
}

// State returns the current state.
func (d *Deterministic[S]) State() S {
	return d.path.state
}

// Head returns the current head position.
func (d *Deterministic[S]) Head() int {
	return d.path.head
}

// Run steps until the machine halts and reports acceptance.
// It never returns for a looping machine.
func (d *Deterministic[S]) Run() bool {
	return ports.Run[*tape.Tape](d)
}
