package domain

import "time"

// RunRecord is the persisted outcome of a single simulation.
type RunRecord struct {
	ID        string    `json:"id"`
	Machine   string    `json:"machine"`
	Mode      Mode      `json:"mode"`
	Input     string    `json:"input"`
	Accepted  bool      `json:"accepted"`
	Limited   bool      `json:"limited,omitempty"`
	Steps     int       `json:"steps"`
	Paths     int       `json:"paths"`
	Tape      string    `json:"tape"`
	States    []string  `json:"states,omitempty"` // Final state of every live path
	CreatedAt time.Time `json:"created_at"`

	// Sealed holds the encrypted record when the store encrypts at rest.
	// Input, Tape and States are blank while it is set.
	Sealed []byte `json:"sealed,omitempty"`
}

// Outcome returns the human verdict used by the CLI.
func (r *RunRecord) Outcome() string {
	if r.Accepted {
		return "accepted"
	}
	return "not accepted"
}
