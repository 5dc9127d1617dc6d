package domain

import (
	"fmt"
	"strings"
)

// Classification tells whether reaching a state halts the machine, and how.
type Classification int

const (
	Neutral   Classification = iota // Regular state, execution continues
	Accepting                       // Halts and accepts
	Rejecting                       // Halts and rejects
)

func (c Classification) String() string {
	switch c {
	case Accepting:
		return "accept"
	case Rejecting:
		return "reject"
	default:
		return "neutral"
	}
}

// IsAccepting reports whether the classification is Accepting.
func (c Classification) IsAccepting() bool { return c == Accepting }

// IsRejecting reports whether the classification is Rejecting.
func (c Classification) IsRejecting() bool { return c == Rejecting }

// ParseClassification understands both the text format markers ("+", "-", "")
// and the YAML spelling ("accept", "reject", "neutral").
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "neutral":
		return Neutral, nil
	case "+", "accept", "accepting":
		return Accepting, nil
	case "-", "reject", "rejecting":
		return Rejecting, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrInvalidClassification, s)
}

// Mode selects the execution engine.
type Mode string

const (
	ModeDeterministic    Mode = "deterministic"
	ModeNonDeterministic Mode = "nondeterministic"
)

// ParseMode accepts the canonical names plus the short "det"/"ndet" forms.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deterministic", "det", "dtm":
		return ModeDeterministic, nil
	case "nondeterministic", "non-deterministic", "ndet", "ndtm":
		return ModeNonDeterministic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
