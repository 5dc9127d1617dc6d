package compiler

import (
	"errors"
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Sections of a machine file, used to locate a ParseError.
const (
	SectionStates      = "states"
	SectionAlphabet    = "alphabet"
	SectionTransitions = "transitions"
	SectionDocument    = "document"
)

var (
	ErrMissingStateHeader    = errors.New("missing states header")
	ErrInvalidStateHeader    = errors.New("invalid states header")
	ErrInvalidStateLine      = errors.New("invalid state line")
	ErrInvalidStateName      = errors.New("reserved state name")
	ErrDuplicateState        = errors.New("state declared twice")
	ErrInvalidStateMarker    = errors.New("invalid state marker")
	ErrMandatoryStatesNotSet = errors.New("starting, accepting and rejecting states must all be set")
	ErrAmbiguousStates       = errors.New("more than one accepting or rejecting state")
	ErrMissingAlphabetHeader = errors.New("missing alphabet header")
	ErrInvalidAlphabetHeader = errors.New("invalid alphabet header")
	ErrBlankInAlphabet       = errors.New("blank symbol is implicit and cannot be declared")
	ErrNotASymbol            = errors.New("not a single symbol")
	ErrAlphabetCount         = errors.New("alphabet size does not match header")
	ErrTransitionFields      = errors.New("transition needs exactly 5 fields")
	ErrInvalidDocument       = errors.New("invalid machine document")

	// ErrInvalidMotion is domain.ErrInvalidMotion, so both match with errors.Is.
	ErrInvalidMotion = domain.ErrInvalidMotion
)

// ParseError locates a syntax error in a machine file.
type ParseError struct {
	Section string
	Line    int // 1-based; 0 when the format has no line information
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s section, line %d: %s", e.Section, e.Line, msg)
	}
	return fmt.Sprintf("%s section: %s", e.Section, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
