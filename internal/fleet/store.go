// internal/fleet/store.go
package fleet

import (
	"fmt"
	"sync"

	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// ErrUnknownVehicle is returned by mutating operations on an id that is not
// in the collection. Read paths return (zero, false) instead.
var ErrUnknownVehicle = fmt.Errorf("unknown vehicle")

// Ticker produces one simulation step for a vehicle. Satisfied by
// *sim.Simulator.
type Ticker interface {
	Tick(core.Vehicle) core.Update
}

// Store owns the live vehicle collection. Each tick builds a wholly new
// slice and swaps it in under the lock, so snapshots handed to readers are
// never mutated afterwards.
type Store struct {
	mu       sync.RWMutex
	vehicles []core.Vehicle
	index    map[string]int
	alertCap int
}

// NewStore creates an empty store. alertCap bounds each vehicle's alert
// list; 0 disables the cap.
func NewStore(alertCap int) *Store {
	return &Store{
		index:    make(map[string]int),
		alertCap: alertCap,
	}
}

// Load replaces the collection with the fixture vehicles.
func (s *Store) Load(vehicles []core.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = make([]core.Vehicle, len(vehicles))
	copy(s.vehicles, vehicles)
	s.reindex()
}

// Snapshot returns the current collection. The returned slice is a copy and
// safe to hold across ticks.
func (s *Store) Snapshot() []core.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Vehicle returns the vehicle with the given id, or ok=false when unknown.
func (s *Store) Vehicle(id string) (core.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return core.Vehicle{}, false
	}
	return s.vehicles[i], true
}

// Count returns the number of vehicles in the collection.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}

// Tick applies one simulation step to every moving vehicle and swaps in the
// resulting collection. It returns the new snapshot and the per-vehicle
// updates that produced it, for persistence and metrics.
func (s *Store) Tick(t Ticker) ([]core.Vehicle, []core.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Vehicle, len(s.vehicles))
	updates := make([]core.Update, 0, len(s.vehicles))
	for i, v := range s.vehicles {
		if v.Status != core.StatusMoving {
			next[i] = v
			continue
		}
		u := t.Tick(v)
		next[i] = u.Apply(v, s.alertCap)
		updates = append(updates, u)
	}

	s.vehicles = next
	snapshot := make([]core.Vehicle, len(next))
	copy(snapshot, next)
	return snapshot, updates
}

// SetStatus assigns a status through the transition table.
func (s *Store) SetStatus(id string, status core.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}
	next, err := s.vehicles[i].Status.Transition(status)
	if err != nil {
		return err
	}

	v := s.vehicles[i]
	v.Status = next
	if next == core.StatusCompleted || next == core.StatusStopped {
		v.Speed = 0
	}
	s.replace(i, v)
	return nil
}

// AddAlert appends an alert to a vehicle, honoring the retention cap.
func (s *Store) AddAlert(id string, alert core.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}

	u := core.Update{
		VehicleID: id,
		Position:  s.vehicles[i].Position,
		Heading:   s.vehicles[i].Heading,
		Speed:     s.vehicles[i].Speed,
		Status:    s.vehicles[i].Status,
		NewAlerts: []core.Alert{alert},
	}
	s.replace(i, u.Apply(s.vehicles[i], s.alertCap))
	return nil
}

// RemoveAlert deletes an alert by id. Unknown alert ids are a no-op.
func (s *Store) RemoveAlert(id, alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}

	v := s.vehicles[i]
	alerts := make([]core.Alert, 0, len(v.Alerts))
	for _, a := range v.Alerts {
		if a.ID != alertID {
			alerts = append(alerts, a)
		}
	}
	v.Alerts = alerts
	s.replace(i, v)
	return nil
}

// replace swaps one element into a fresh slice so previously returned
// snapshots keep their view.
func (s *Store) replace(i int, v core.Vehicle) {
	next := make([]core.Vehicle, len(s.vehicles))
	copy(next, s.vehicles)
	next[i] = v
	s.vehicles = next
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.vehicles))
	for i, v := range s.vehicles {
		s.index[v.ID] = i
	}
}
