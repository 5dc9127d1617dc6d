package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventStep   EventType = "step"
	EventBranch EventType = "branch"
	EventReject EventType = "path_reject"
	EventHalt   EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Mode      Mode      `json:"mode"`
}

// StepEvent is emitted once per engine step that was not a no-op.
type StepEvent struct {
	EventBase
	Paths int `json:"paths"` // Live configurations after the step (1 for deterministic machines)
}

// BranchEvent is emitted when a configuration forks into several successors.
type BranchEvent struct {
	EventBase
	State   string `json:"state"`
	Read    Symbol `json:"read"`
	Choices int    `json:"choices"`
}

// PathEvent is emitted when a single configuration falls into the rejecting state
// because no transition applies to it.
type PathEvent struct {
	EventBase
	State string `json:"state"`
	Read  Symbol `json:"read"`
	Head  int    `json:"head"`
}

// HaltEvent is emitted once, on the step that made the machine terminal.
type HaltEvent struct {
	EventBase
	Accepted bool `json:"accepted"`
	Paths    int  `json:"paths"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnStep   func(*StepEvent)
	OnBranch func(*BranchEvent)
	OnReject func(*PathEvent)
	OnHalt   func(*HaltEvent)
}

// NewEventBase stamps an event with the current time.
func NewEventBase(t EventType, mode Mode) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, Mode: mode}
}
