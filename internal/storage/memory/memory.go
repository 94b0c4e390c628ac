// internal/storage/memory/memory.go
package memory

import (
	"sync"

	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// trailCap bounds the per-vehicle trail so a long-running session does not
// grow without limit.
const trailCap = 500

// VehicleRecord groups a registered vehicle with its recorded trail.
type VehicleRecord struct {
	Vehicle core.Vehicle
	Trail   []core.Coordinate // newest last
}

// Backend stores tick output in memory. It is the default backend for demo
// sessions where nothing needs to survive a restart.
type Backend struct {
	vehicles map[string]*VehicleRecord
	alerts   []core.Alert
	prefs    *core.Preferences
	mu       sync.RWMutex
}

// New creates a new memory backend.
func New() *Backend {
	return &Backend{
		vehicles: make(map[string]*VehicleRecord),
	}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

// RegisterFleet resets the backend for a new session.
func (b *Backend) RegisterFleet(vehicles []core.Vehicle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.vehicles = make(map[string]*VehicleRecord, len(vehicles))
	for _, v := range vehicles {
		b.vehicles[v.ID] = &VehicleRecord{Vehicle: v}
	}
	b.alerts = nil
	return nil
}

// RecordSnapshots appends each vehicle's position to its trail.
func (b *Backend) RecordSnapshots(vehicles []core.Vehicle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, v := range vehicles {
		rec, ok := b.vehicles[v.ID]
		if !ok {
			rec = &VehicleRecord{Vehicle: v}
			b.vehicles[v.ID] = rec
		}
		rec.Trail = append(rec.Trail, v.Position)
		if len(rec.Trail) > trailCap {
			rec.Trail = rec.Trail[len(rec.Trail)-trailCap:]
		}
	}
	return nil
}

// RecordAlerts appends emitted alerts.
func (b *Backend) RecordAlerts(alerts []core.Alert) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alerts = append(b.alerts, alerts...)
	return nil
}

// AlertCount returns the number of recorded alerts.
func (b *Backend) AlertCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.alerts)
}

// Trail returns the most recent coordinates for a vehicle, newest first.
// An unknown vehicle yields an empty trail, not an error.
func (b *Backend) Trail(vehicleID string, limit int) ([]core.Coordinate, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.vehicles[vehicleID]
	if !ok || len(rec.Trail) == 0 {
		return nil, nil
	}

	n := len(rec.Trail)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]core.Coordinate, limit)
	for i := 0; i < limit; i++ {
		out[i] = rec.Trail[n-1-i]
	}
	return out, nil
}

// SavePreferences stores the dashboard preferences.
func (b *Backend) SavePreferences(p core.Preferences) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.prefs = &p
	return nil
}

// LoadPreferences returns the stored preferences, or the defaults when
// nothing has been saved yet.
func (b *Backend) LoadPreferences() (core.Preferences, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.prefs == nil {
		return core.DefaultPreferences(), nil
	}
	return *b.prefs, nil
}
