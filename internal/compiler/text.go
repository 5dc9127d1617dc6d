package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
)

var reservedStateNames = map[string]struct{}{
	"alphabet": {},
	"+":        {},
	"-":        {},
}

// textReader walks the text format line by line.
type textReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *textReader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimRight(r.scanner.Text(), "\r"), true
}

func (r *textReader) fail(section string, err error, reason string) error {
	return &ParseError{Section: section, Line: r.line, Reason: reason, Err: err}
}

// ParseText reads the line-oriented machine format.
// The first listed state is the starting state. The last state marked "+"
// (or "-") is the accepting (or rejecting) state.
func ParseText(src io.Reader) (*dsl.Builder[string], error) {
	r := &textReader{scanner: bufio.NewScanner(src)}
	b := dsl.New[string]()

	if err := r.states(b); err != nil {
		return nil, r.ioError(err)
	}
	if err := r.alphabet(b); err != nil {
		return nil, r.ioError(err)
	}
	if err := r.transitions(b); err != nil {
		return nil, r.ioError(err)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read machine: %w", err)
	}
	return b, nil
}

// ioError prefers a scanner failure over the parse error it caused.
func (r *textReader) ioError(err error) error {
	if scanErr := r.scanner.Err(); scanErr != nil {
		return fmt.Errorf("failed to read machine: %w", scanErr)
	}
	return err
}

func (r *textReader) states(b *dsl.Builder[string]) error {
	header, ok := r.next()
	if !ok || !strings.HasPrefix(header, "states") {
		return r.fail(SectionStates, ErrMissingStateHeader, "")
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "states" {
		return r.fail(SectionStates, ErrInvalidStateHeader, header)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return r.fail(SectionStates, ErrInvalidStateHeader, fmt.Sprintf("%q is not a state count", fields[1]))
	}

	var (
		haveStart              bool
		haveAccept, haveReject bool
	)
	seen := make(map[string]struct{}, count)
	for range count {
		line, ok := r.next()
		if !ok {
			return r.fail(SectionStates, ErrInvalidStateLine, "unexpected end of input")
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || len(fields) > 2 {
			return r.fail(SectionStates, ErrInvalidStateLine, line)
		}

		name := fields[0]
		if _, reserved := reservedStateNames[name]; reserved {
			return r.fail(SectionStates, ErrInvalidStateName, name)
		}
		if _, dup := seen[name]; dup {
			return r.fail(SectionStates, ErrDuplicateState, name)
		}
		seen[name] = struct{}{}

		sb := b.Add(name)
		if !haveStart {
			sb.Start()
			haveStart = true
		}
		if len(fields) == 2 {
			switch fields[1] {
			case "+":
				sb.Accept()
				haveAccept = true
			case "-":
				sb.Reject()
				haveReject = true
			default:
				return r.fail(SectionStates, ErrInvalidStateMarker, fields[1])
			}
		}
	}

	if !haveStart || !haveAccept || !haveReject {
		return r.fail(SectionStates, ErrMandatoryStatesNotSet, "")
	}
	return nil
}

func (r *textReader) alphabet(b *dsl.Builder[string]) error {
	header, ok := r.next()
	if !ok || !strings.HasPrefix(header, "alphabet") {
		return r.fail(SectionAlphabet, ErrMissingAlphabetHeader, "")
	}

	fields := strings.Fields(header)
	if len(fields) < 2 || fields[0] != "alphabet" {
		return r.fail(SectionAlphabet, ErrInvalidAlphabetHeader, header)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return r.fail(SectionAlphabet, ErrInvalidAlphabetHeader, fmt.Sprintf("%q is not a symbol count", fields[1]))
	}

	seen := make(map[domain.Symbol]struct{})
	for _, tok := range fields[2:] {
		sym, ok := symbol(tok)
		if !ok {
			return r.fail(SectionAlphabet, ErrNotASymbol, tok)
		}
		if sym == domain.Blank {
			return r.fail(SectionAlphabet, ErrBlankInAlphabet, "")
		}
		if _, dup := seen[sym]; !dup {
			seen[sym] = struct{}{}
			b.Symbols(sym)
		}
	}

	if len(seen) != count {
		return r.fail(SectionAlphabet, ErrAlphabetCount, fmt.Sprintf("header says %d, found %d", count, len(seen)))
	}
	return nil
}

func (r *textReader) transitions(b *dsl.Builder[string]) error {
	for {
		line, ok := r.next()
		if !ok {
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 5 {
			return r.fail(SectionTransitions, ErrTransitionFields, fmt.Sprintf("got %d", len(fields)))
		}

		read, ok := symbol(fields[1])
		if !ok {
			return r.fail(SectionTransitions, ErrNotASymbol, fields[1])
		}
		write, ok := symbol(fields[3])
		if !ok {
			return r.fail(SectionTransitions, ErrNotASymbol, fields[3])
		}
		move, err := domain.ParseMotion(fields[4])
		if err != nil {
			return r.fail(SectionTransitions, ErrInvalidMotion, fields[4])
		}

		b.Transition(fields[0], domain.NewTransition(read, fields[2], write, move))
	}
}

// symbol decodes a token holding exactly one rune.
func symbol(tok string) (domain.Symbol, bool) {
	if utf8.RuneCountInString(tok) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
