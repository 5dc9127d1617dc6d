package cli

import (
	"errors"
	"io/fs"
)

// Process exit codes.
const (
	ExitAccepted    = 0
	ExitNotAccepted = 1
	ExitInput       = 2 // Malformed machine, config or tape
	ExitIO          = 3 // Unreadable files, unreachable stores
)

// ExitError carries the exit code a command wants the process to end with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		if e.Code == ExitNotAccepted {
			return "not accepted"
		}
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrNotAccepted is returned by Run when the machine halted without accepting.
var ErrNotAccepted = &ExitError{Code: ExitNotAccepted}

func ioError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitIO, Err: err}
}

// ExitCode maps err to a process exit code. Errors without an explicit code
// are input errors unless they come from the file system.
func ExitCode(err error) int {
	if err == nil {
		return ExitAccepted
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIO
	}
	return ExitInput
}
