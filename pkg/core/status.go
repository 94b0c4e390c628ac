// pkg/core/status.go
package core

import "fmt"

// Status is the lifecycle state of a vehicle.
type Status string

const (
	StatusMoving      Status = "moving"
	StatusStopped     Status = "stopped"
	StatusCompleted   Status = "completed"
	StatusDelayed     Status = "delayed"
	StatusMaintenance Status = "maintenance"
)

// Statuses lists every valid status value.
var Statuses = []Status{
	StatusMoving,
	StatusStopped,
	StatusCompleted,
	StatusDelayed,
	StatusMaintenance,
}

// ErrInvalidTransition is returned when a status change is not allowed by
// the transition table.
var ErrInvalidTransition = fmt.Errorf("invalid status transition")

// transitions is the allowed status transition table. completed is terminal.
var transitions = map[Status][]Status{
	StatusMoving:      {StatusStopped, StatusCompleted, StatusDelayed, StatusMaintenance},
	StatusStopped:     {StatusMoving, StatusDelayed, StatusMaintenance},
	StatusDelayed:     {StatusMoving, StatusStopped},
	StatusMaintenance: {StatusMoving, StatusStopped},
	StatusCompleted:   {},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a change from s to next is allowed.
// A no-op transition (s == next) is always allowed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates a status change against the transition table and
// returns the new status, or ErrInvalidTransition wrapped with both values.
func (s Status) Transition(next Status) (Status, error) {
	if !next.Valid() {
		return s, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !s.CanTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
