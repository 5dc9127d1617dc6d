package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/tape"
)

// NonDeterministic explores every choice of a non-deterministic machine in
// lockstep. It accepts as soon as one path accepts and rejects only when
// every path rejects. It is not safe for concurrent use.
type NonDeterministic[S comparable] struct {
	repr  *machine.NonDeterministicRepresentation[S]
	paths []*path[S]
	opts  engineOptions
}

var _ ports.Machine[[]*tape.Tape] = (*NonDeterministic[string])(nil)

// NewNonDeterministic validates cfg and starts with a single path.
func NewNonDeterministic[S comparable](cfg NonDeterministicConfig[S], opts ...EngineOption) (*NonDeterministic[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &NonDeterministic[S]{
		repr:  cfg.Representation,
		paths: []*path[S]{newPath(cfg.Representation.StartingState(), cfg.Input)},
		opts:  newEngineOptions(opts),
	}, nil
}

// Step advances every live path by one transition.
//
// A path with no applicable action moves to the rejecting state and stays in
// the set. A path with k actions applies the first in place and forks k-1
// clones for the rest. Identical configurations are then merged.
func (n *NonDeterministic[S]) Step() {
	if n.IsAccepting() || n.IsRejecting() {
		return
	}

	reject := n.repr.RejectingState()
	table := n.repr.Table()

	var staged []*path[S]
	for _, p := range n.paths {
		if p.state == reject {
			continue
		}

		sym := p.read()
		acts := table.Lookup(p.state, sym)

		if len(acts) == 0 {
			n.opts.logger.Debug("path rejected", slog.Any("state", p.state), slog.String("read", string(sym)), slog.Int("head", p.head))
			n.opts.emitReject(domain.ModeNonDeterministic, fmt.Sprint(p.state), sym, p.head)
			p.state = reject
			continue
		}

		if len(acts) > 1 {
			n.opts.logger.Debug("branch", slog.Any("state", p.state), slog.String("read", string(sym)), slog.Int("choices", len(acts)))
			n.opts.emitBranch(domain.ModeNonDeterministic, fmt.Sprint(p.state), sym, len(acts))
			for _, act := range acts[1:] {
				c := p.clone()
				c.apply(act)
				staged = append(staged, c)
			}
		}
		p.apply(acts[0])
	}

	n.paths = merge(n.paths, staged)

	n.opts.emitStep(domain.ModeNonDeterministic, len(n.paths))
	if n.IsAccepting() || n.IsRejecting() {
		n.opts.emitHalt(domain.ModeNonDeterministic, n.IsAccepting(), len(n.paths))
	}
}

// merge appends staged to live, dropping every configuration already seen.
// The first occurrence wins, so surviving paths keep their order.
func merge[S comparable](live, staged []*path[S]) []*path[S] {
	out := make([]*path[S], 0, len(live)+len(staged))
	seen := make(map[pathKey[S]]struct{}, len(live)+len(staged))
	for _, group := range [][]*path[S]{live, staged} {
		for _, p := range group {
			k := p.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// IsAccepting reports whether any path reached the accepting state.
func (n *NonDeterministic[S]) IsAccepting() bool {
	accept := n.repr.AcceptingState()
	for _, p := range n.paths {
		if p.state == accept {
			return true
		}
	}
	return false
}

// IsRejecting reports whether every path reached the rejecting state.
func (n *NonDeterministic[S]) IsRejecting() bool {
	reject := n.repr.RejectingState()
	for _, p := range n.paths {
		if p.state != reject {
			return false
		}
	}
	return true
}

// Tape returns the tapes of every live path, in path order.
func (n *NonDeterministic[S]) Tape() []*tape.Tape {
	out := make([]*tape.Tape, len(n.paths))
	for i, p := range n.paths {
		out[i] = p.tape
	}
	return out
}

// AcceptingTape returns the tape of the first accepting path, if any.
func (n *NonDeterministic[S]) AcceptingTape() (*tape.Tape, bool) {
	accept := n.repr.AcceptingState()
	for _, p := range n.paths {
		if p.state == accept {
			return p.tape, true
		}
	}
	return nil, false
}

// Paths returns the number of live configurations.
func (n *NonDeterministic[S]) Paths() int {
	return len(n.paths)
}

// States returns the state of every path, in path order.
func (n *NonDeterministic[S]) States() []S {
	out := make([]S, len(n.paths))
	for i, p := range n.paths {
		out[i] = p.state
	}
	return out
}

// Run steps until the machine halts and reports acceptance.
// It never returns when every live path loops.
func (n *NonDeterministic[S]) Run() bool {
	return ports.Run[[]*tape.Tape](n)
}
