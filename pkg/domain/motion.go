package domain

import "fmt"

// Motion is the head displacement applied after a transition writes its symbol.
type Motion int

const (
	Stay Motion = iota
	Left
	Right
)

func (m Motion) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "S"
	}
}

// ParseMotion decodes the single-letter motion tokens used by machine files.
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "L", "l":
		return Left, nil
	case "R", "r":
		return Right, nil
	case "S", "s":
		return Stay, nil
	}
	return Stay, fmt.Errorf("%w: %q", ErrInvalidMotion, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Motion) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Motion) UnmarshalText(text []byte) error {
	parsed, err := ParseMotion(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
