package runtime

import "errors"

// ErrNilRepresentation is returned when an engine is configured without a representation.
var ErrNilRepresentation = errors.New("engine requires a machine representation")
