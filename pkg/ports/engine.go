package ports

// Machine is the step-wise execution surface shared by the deterministic and
// non-deterministic engines and by every decorator wrapping them.
// T is whatever the implementation exposes as its tape.
type Machine[T any] interface {
	// Step applies one transition. It is a no-op on a terminal machine.
	Step()

	IsAccepting() bool
	IsRejecting() bool

	Tape() T
}

// Run steps m until it accepts or rejects and reports whether it accepted.
// It never returns for a machine that loops forever; wrap m in a step limiter
// when the machine is not trusted.
func Run[T any](m Machine[T]) bool {
	for !m.IsAccepting() && !m.IsRejecting() {
		m.Step()
	}
	return m.IsAccepting()
}
