package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

// path is one machine configuration: a state, a tape and a head position.
type path[S comparable] struct {
	state S
	tape  *tape.Tape
	head  int
}

func newPath[S comparable](start S, input []domain.Symbol) *path[S] {
	return &path[S]{state: start, tape: tape.New(input)}
}

func (p *path[S]) read() domain.Symbol {
	return p.tape.Read(p.head)
}

// apply writes the action's symbol under the head, moves, then switches state.
func (p *path[S]) apply(act domain.Action[S]) {
	p.tape.Write(p.head, act.Write)
	p.head = tape.Move(p.head, act.Move)
	p.state = act.Next
}

func (p *path[S]) clone() *path[S] {
	return &path[S]{state: p.state, tape: p.tape.Clone(), head: p.head}
}

// pathKey identifies configurations that will behave identically from now on.
type pathKey[S comparable] struct {
	state S
	head  int
	tape  string
}

func (p *path[S]) key() pathKey[S] {
	return pathKey[S]{state: p.state, head: p.head, tape: p.tape.Key()}
}
