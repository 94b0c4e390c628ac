// internal/storage/storage.go
package storage

import "github.com/ahmed-reda-301/truck-tracker/pkg/core"

// PreferencesKey is the fixed name the dashboard preferences are stored
// under. The payload holds only primitive flags, so no schema versioning.
const PreferencesKey = "dashboard"

// Backend is the interface all storage implementations must satisfy. The
// worker batches tick output before handing it over, so the record methods
// take slices.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Fleet registration at fixture load
	RegisterFleet(vehicles []core.Vehicle) error

	// Tick output
	RecordSnapshots(vehicles []core.Vehicle) error
	RecordAlerts(alerts []core.Alert) error

	// Trail returns the most recent recorded coordinates for a vehicle,
	// newest first, at most limit entries.
	Trail(vehicleID string, limit int) ([]core.Coordinate, error)

	// Dashboard preferences shim
	SavePreferences(p core.Preferences) error
	LoadPreferences() (core.Preferences, error)
}
