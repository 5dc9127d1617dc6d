// Package tape implements the singly-infinite, growable symbol tape shared by
// both execution engines.
package tape

import (
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is a growable buffer seeded with the input word.
// Every position past the physical end reads as domain.Blank.
// The buffer only ever grows; the head is kept by the caller.
type Tape struct {
	cells []domain.Symbol

	// extent is one past the highest position that holds input or was written.
	extent int
}

// New creates a tape holding a copy of input.
func New(input []domain.Symbol) *Tape {
	return &Tape{
		cells:  slices.Clone(input),
		extent: len(input),
	}
}

// FromString creates a tape from the runes of s.
func FromString(s string) *Tape {
	return New([]domain.Symbol(s))
}

// Len returns the physical length of the buffer, padding included.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Read returns the symbol at pos. Reading past the end yields Blank and does
// not grow the tape.
func (t *Tape) Read(pos int) domain.Symbol {
	if pos < 0 || pos >= len(t.cells) {
		return domain.Blank
	}
	return t.cells[pos]
}

// Write stores sym at pos, growing the buffer first when pos is at or beyond
// its end. pos must not be negative.
func (t *Tape) Write(pos int, sym domain.Symbol) {
	t.grow(pos)
	t.cells[pos] = sym
	if pos >= t.extent {
		t.extent = pos + 1
	}
}

// grow extends the buffer by at least len+2 blanks when pos does not fit.
func (t *Tape) grow(pos int) {
	if pos < len(t.cells) {
		return
	}
	n := len(t.cells) + 2
	if need := pos + 1 - len(t.cells); need > n {
		n = need
	}
	t.cells = append(t.cells, slices.Repeat([]domain.Symbol{domain.Blank}, n)...)
}

// Cells returns a copy of the physical buffer.
func (t *Tape) Cells() []domain.Symbol {
	return slices.Clone(t.cells)
}

// String renders the visited region: the input plus every written cell.
func (t *Tape) String() string {
	return string(t.cells[:t.extent])
}

// Trimmed renders the tape without trailing blanks, or "_" when nothing is left.
func (t *Tape) Trimmed() string {
	if s := t.Key(); s != "" {
		return s
	}
	return string(domain.Blank)
}

// Key identifies the tape contents independently of padding: two tapes with the
// same Key read the same symbol at every position.
func (t *Tape) Key() string {
	return strings.TrimRight(string(t.cells), string(domain.Blank))
}

// Equal reports whether both tapes read the same symbol at every position.
func (t *Tape) Equal(other *Tape) bool {
	return t.Key() == other.Key()
}

// Clone returns an independent copy.
func (t *Tape) Clone() *Tape {
	return &Tape{
		cells:  slices.Clone(t.cells),
		extent: t.extent,
	}
}

// Move displaces head by m. The tape is bounded on the left, so moving left
// from 0 stays at 0.
func Move(head int, m domain.Motion) int {
	switch m {
	case domain.Left:
		if head > 0 {
			return head - 1
		}
		return 0
	case domain.Right:
		return head + 1
	default:
		return head
	}
}
